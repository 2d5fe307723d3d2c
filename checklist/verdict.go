package checklist

// Tone classifies a verdict for presentation.
type Tone string

const (
	ToneGood Tone = "good"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// Verdict is the discrete entry recommendation for a (model, score) pair.
type Verdict struct {
	Label string
	Tone  Tone
}

// Evaluate maps a score to a verdict using the model's thresholds. The
// rebound model trades earlier signals, so its bands sit lower than trend.
func Evaluate(m Model, score int) Verdict {
	if m == ModelRebound {
		switch {
		case score >= 75:
			return Verdict{Label: "can probe (rebound)", Tone: ToneGood}
		case score >= 65:
			return Verdict{Label: "watch, wait for signal", Tone: ToneWarn}
		default:
			return Verdict{Label: "abandon", Tone: ToneBad}
		}
	}

	switch {
	case score >= 80:
		return Verdict{Label: "can enter", Tone: ToneGood}
	case score >= 70:
		return Verdict{Label: "enter light, probe", Tone: ToneWarn}
	default:
		return Verdict{Label: "abandon", Tone: ToneBad}
	}
}

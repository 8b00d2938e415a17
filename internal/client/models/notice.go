package models

// Level is the tone of a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a user-facing outcome message. The core only produces notices;
// rendering them (toast, terminal line) is up to the presentation layer.
type Notice struct {
	Level Level
	Text  string
}

func Success(text string) Notice { return Notice{Level: LevelSuccess, Text: text} }
func Failure(text string) Notice { return Notice{Level: LevelError, Text: text} }
func Info(text string) Notice    { return Notice{Level: LevelInfo, Text: text} }

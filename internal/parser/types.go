package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	System
	Unknown
)

type Quantity struct {
	Raw  string
	N    int
	Unit string
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries what the caller knows about the session so bare or
// vague input can be completed.
type ParseContext struct {
	ActiveTool string
	Tools      []string
	HasCursor  bool
}

// ArgKind says how a command's arguments are resolved.
type ArgKind int

const (
	ArgsNone ArgKind = iota
	ArgsCoordinate
	ArgsDirection
	ArgsTool
	ArgsSea
	ArgsSeed
)

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	Args       ArgKind
	HandlerKey string
}

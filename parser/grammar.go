package parser

// The types below form the concrete syntax of canonical phrase text. They
// exist to drive participle; callers only ever see the ast package.

type Phrase struct {
	Sequence *Sequence `parser:"@@"`
}

type Sequence struct {
	Elements []*Element `parser:"@@ ( \"followed by\" @@ )*"`
}

// Element nests to the right: "a or b or c" is a or (b or c).
type Element struct {
	Operand *Operand `parser:"@@"`
	Or      *Element `parser:"( \"or\" @@ )?"`
}

type Operand struct {
	Group    *GroupExpr    `parser:"  @@"`
	Repeated *RepeatedTerm `parser:"| @@"`
}

type GroupExpr struct {
	Body       *Sequence   `parser:"\"group\" @@ \"end group\""`
	Repetition *Repetition `parser:"@@?"`
}

type RepeatedTerm struct {
	Before *Repetition `parser:"@@?"`
	Term   *Term       `parser:"@@"`
	After  *Repetition `parser:"@@?"`
}

type Term struct {
	Base     *BaseTerm `parser:"@@"`
	Excluded *BaseTerm `parser:"( \"except\" @@ )?"`
}

type BaseTerm struct {
	Class   string `parser:"  @Class"`
	Range   *Range `parser:"| @@"`
	Literal string `parser:"| @Literal"`
}

type Range struct {
	Lo string `parser:"\"range\" @Literal"`
	Hi string `parser:"\"to\" @Literal"`
}

type Repetition struct {
	Optional   bool           `parser:"  @\"optional\""`
	OneOrMore  bool           `parser:"| @\"one or more\""`
	ZeroOrMore bool           `parser:"| @\"zero or more\""`
	Between    *BetweenCounts `parser:"| @@"`
	AtLeast    string         `parser:"| \"at least\" @Int \"times\""`
	AtMost     string         `parser:"| \"at most\" @Int \"times\""`
	Exact      string         `parser:"| \"exactly\"? @Int \"times\""`
}

type BetweenCounts struct {
	Min string `parser:"\"between\" @Int"`
	Max string `parser:"\"and\" @Int \"times\""`
}

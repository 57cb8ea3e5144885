package extractly

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	slotToken = iota
)

var (
	slotMatcher = parsly.NewToken(slotToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
)

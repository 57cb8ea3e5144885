package extractly

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/viant/parsly"
)

//Parser represents a compiled format template; immutable once built,
//safe to share across concurrent match calls
type Parser struct {
	template      string
	caseSensitive bool
	converters    Converters
	fields        []*Field
	index         map[string]int //normalized name to field position
	exact         *regexp.Regexp
	search        *regexp.Regexp
}

//NewParser compiles a format template; matching is case-insensitive
//unless WithCaseSensitive overrides it
func NewParser(template string, opts ...Option) (*Parser, error) {
	result := &Parser{template: template, index: map[string]int{}}
	for _, opt := range opts {
		opt(result)
	}
	if err := result.compile(); err != nil {
		return nil, err
	}
	return result, nil
}

//Template returns the source template
func (p *Parser) Template() string {
	return p.template
}

//Fields returns compiled fields in template appearance order
func (p *Parser) Fields() []*Field {
	return p.fields
}

func (p *Parser) compile() error {
	pattern, err := p.build()
	if err != nil {
		return err
	}
	flags := "(?i)"
	if p.caseSensitive {
		flags = ""
	}
	if p.exact, err = regexp.Compile(flags + "^" + pattern + "$"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if p.search, err = regexp.Compile(flags + pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

//build scans the template left to right, escaping literal runs and
//assembling one capture group per field slot in appearance order
func (p *Parser) build() (string, error) {
	pattern := strings.Builder{}
	literal := strings.Builder{}
	flush := func() {
		if literal.Len() > 0 {
			pattern.WriteString(regexp.QuoteMeta(literal.String()))
			literal.Reset()
		}
	}
	cursor := parsly.NewCursor("", []byte(p.template), 0)
	input := cursor.Input
	for cursor.Pos < len(input) {
		switch input[cursor.Pos] {
		case '{':
			if cursor.Pos+1 < len(input) && input[cursor.Pos+1] == '{' {
				literal.WriteByte('{')
				cursor.Pos += 2
				continue
			}
			match := cursor.MatchAny(slotMatcher)
			if match.Code != slotToken {
				return "", fmt.Errorf("%w: unmatched '{' at %v", ErrInvalidFormat, cursor.Pos)
			}
			slot := match.Text(cursor)
			slot = slot[1 : len(slot)-1]
			field, err := parseField(slot, len(p.fields), p.converters)
			if err != nil {
				return "", err
			}
			flush()
			if err = p.addField(field, &pattern); err != nil {
				return "", err
			}
		case '}':
			if cursor.Pos+1 < len(input) && input[cursor.Pos+1] == '}' {
				literal.WriteByte('}')
				cursor.Pos += 2
				continue
			}
			return "", fmt.Errorf("%w: unmatched '}' at %v", ErrInvalidFormat, cursor.Pos)
		default:
			literal.WriteByte(input[cursor.Pos])
			cursor.Pos++
		}
	}
	flush()
	return pattern.String(), nil
}

func (p *Parser) addField(field *Field, pattern *strings.Builder) error {
	if field.Name != "" {
		if _, ok := p.index[field.Name]; ok {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidFormat, field.Name)
		}
		p.index[field.Name] = field.Index
	}
	p.fields = append(p.fields, field)
	if field.Name != "" {
		pattern.WriteString("(?P<" + field.Name + ">")
	} else {
		pattern.WriteString("(")
	}
	pattern.WriteString(field.pattern())
	pattern.WriteString(")")
	return nil
}

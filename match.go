package extractly

import (
	"iter"
	"unicode/utf8"
)

//Match evaluates the template anchored at both ends against the whole
//subject text; a match consuming less than the entire subject is no match
func (p *Parser) Match(text string) (*Result, error) {
	loc := p.exact.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrNoMatch
	}
	return p.newResult(text, loc)
}

//Search evaluates the template unanchored and returns the leftmost match
func (p *Parser) Search(text string) (*Result, error) {
	loc := p.search.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrNoMatch
	}
	return p.newResult(text, loc)
}

//FindAll returns a lazy, finite sequence of successive non-overlapping
//matches in left to right order; scanning resumes after the end of the
//previous match, advancing one rune on an empty match. Each occurrence is
//an independent match attempt: a conversion failure yields a nil result
//with the error and scanning continues. A fresh call re-scans the subject.
func (p *Parser) FindAll(text string) iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		offset := 0
		for offset <= len(text) {
			loc := p.search.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				return
			}
			result, err := p.newResult(text[offset:], loc)
			if !yield(result, err) {
				return
			}
			next := offset + loc[1]
			if loc[0] == loc[1] {
				_, size := utf8.DecodeRuneInString(text[next:])
				if size == 0 {
					return
				}
				next += size
			}
			offset = next
		}
	}
}

//newResult copies each field capture out of the subject and applies the
//bound conversion; a conversion failure aborts the whole match attempt
func (p *Parser) newResult(text string, loc []int) (*Result, error) {
	result := &Result{
		fields: p.fields,
		index:  p.index,
		raw:    make([]string, len(p.fields)),
		values: make([]Value, len(p.fields)),
	}
	for i, field := range p.fields {
		begin, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if begin == -1 {
			continue
		}
		raw := text[begin:end]
		result.raw[i] = raw
		value, err := field.conv.Convert(raw)
		if err != nil {
			return nil, err
		}
		result.values[i] = value
	}
	return result, nil
}

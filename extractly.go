package extractly

//Parse compiles a template and fully matches it against text; compilation
//is case-insensitive, no-match is reported as ErrNoMatch. Reuse NewParser
//when matching the same template repeatedly.
func Parse(template, text string) (*Result, error) {
	parser, err := NewParser(template)
	if err != nil {
		return nil, err
	}
	return parser.Match(text)
}

//ParseWithTypes is Parse with a caller conversion table consulted before
//the built-in table
func ParseWithTypes(template, text string, converters Converters) (*Result, error) {
	parser, err := NewParser(template, WithConverters(converters))
	if err != nil {
		return nil, err
	}
	return parser.Match(text)
}

//Search compiles a template and returns the leftmost match in text
func Search(template, text string) (*Result, error) {
	parser, err := NewParser(template)
	if err != nil {
		return nil, err
	}
	return parser.Search(text)
}

//SearchWithTypes is Search with a caller conversion table
func SearchWithTypes(template, text string, converters Converters) (*Result, error) {
	parser, err := NewParser(template, WithConverters(converters))
	if err != nil {
		return nil, err
	}
	return parser.Search(text)
}

//FindAll compiles a template and collects all non-overlapping matches,
//skipping occurrences whose field conversion failed
func FindAll(template, text string) (Results, error) {
	parser, err := NewParser(template)
	if err != nil {
		return nil, err
	}
	return findAll(parser, text), nil
}

//FindAllWithTypes is FindAll with a caller conversion table
func FindAllWithTypes(template, text string, converters Converters) (Results, error) {
	parser, err := NewParser(template, WithConverters(converters))
	if err != nil {
		return nil, err
	}
	return findAll(parser, text), nil
}

func findAll(parser *Parser, text string) Results {
	var results Results
	for result, err := range parser.FindAll(text) {
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results
}

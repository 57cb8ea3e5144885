package extractly

//Option represents a parser option
type Option func(p *Parser)

//WithCaseSensitive returns an option switching the compiled pattern
//to case-sensitive matching
func WithCaseSensitive(flag bool) Option {
	return func(p *Parser) {
		p.caseSensitive = flag
	}
}

//WithConverters returns an option supplying a caller conversion table,
//consulted before the built-in table; an entry sharing a built-in key
//shadows the built-in converter
func WithConverters(converters Converters) Option {
	return func(p *Parser) {
		for key, converter := range converters {
			p.converter(key, converter)
		}
	}
}

//WithConverter returns an option registering a single caller converter
func WithConverter(key string, converter Converter) Option {
	return func(p *Parser) {
		p.converter(key, converter)
	}
}

func (p *Parser) converter(key string, converter Converter) {
	if p.converters == nil {
		p.converters = Converters{}
	}
	p.converters[key] = converter
}

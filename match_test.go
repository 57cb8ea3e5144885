package extractly

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Match(t *testing.T) {

	var testCases = []struct {
		description string
		template    string
		options     []Option
		text        string
		expectErr   error
		positional  []string
		named       map[string]string
	}{
		{
			description: "words",
			template:    "{:word} {:word}",
			text:        "hello world",
			positional:  []string{"hello", "world"},
		},
		{
			description: "literal prefix and suffix",
			template:    "Hello, {:word}!",
			text:        "Hello, world!",
			positional:  []string{"world"},
		},
		{
			description: "named and positional mixed",
			template:    "{:word} {name:word} {:word}",
			text:        "a world c",
			positional:  []string{"a", "world", "c"},
			named:       map[string]string{"name": "world"},
		},
		{
			description: "anonymous any field",
			template:    "Bring me a {}",
			text:        "Bring me a shrubbery",
			positional:  []string{"shrubbery"},
		},
		{
			description: "multiple anonymous fields",
			template:    "The {} who {} {}",
			text:        "The knights who say Ni!",
			positional:  []string{"knights", "say", "Ni!"},
		},
		{
			description: "typed named fields",
			template:    "Name: {name:word}, Age: {age:integer}, Score: {score:float}",
			text:        "Name: Alice, Age: 25, Score: 95.5",
			positional:  []string{"Alice", "25", "95.5"},
			named:       map[string]string{"name": "Alice", "age": "25", "score": "95.5"},
		},
		{
			description: "dotted identifiers",
			template:    "User {user.name:word} ({user.id:integer}) - Role: {user.role:word}",
			text:        "User admin (123) - Role: superuser",
			named:       map[string]string{"user.name": "admin", "user.id": "123", "user.role": "superuser"},
		},
		{
			description: "special characters escaped in literals",
			template:    "Price: ${price:float}",
			text:        "Price: $123.45",
			named:       map[string]string{"price": "123.45"},
		},
		{
			description: "parentheses in literals",
			template:    "({value:word})",
			text:        "(test)",
			named:       map[string]string{"value": "test"},
		},
		{
			description: "square brackets in literals",
			template:    "[{value:word}]",
			text:        "[test]",
			named:       map[string]string{"value": "test"},
		},
		{
			description: "empty template matches empty text",
			template:    "",
			text:        "",
			positional:  []string{},
		},
		{
			description: "empty template rejects text",
			template:    "",
			text:        "x",
			expectErr:   ErrNoMatch,
		},
		{
			description: "literal mismatch",
			template:    "hello",
			text:        "world",
			expectErr:   ErrNoMatch,
		},
		{
			description: "partial consumption is no match",
			template:    "Hello {:word}!",
			text:        "Hello World! And more",
			expectErr:   ErrNoMatch,
		},
		{
			description: "word does not match empty",
			template:    "Name: {name:word}, Age: {age:integer}",
			text:        "Name: , Age: 25",
			expectErr:   ErrNoMatch,
		},
		{
			description: "case insensitive by default",
			template:    "Hello, {name:word}!",
			text:        "HELLO, World!",
			named:       map[string]string{"name": "World"},
		},
		{
			description: "case sensitive on request",
			template:    "Hello, {name:word}!",
			options:     []Option{WithCaseSensitive(true)},
			text:        "HELLO, World!",
			expectErr:   ErrNoMatch,
		},
		{
			description: "integer overflow is a conversion failure",
			template:    "{:integer}",
			text:        "92233720368547758080",
			expectErr:   ErrTypeConversion,
		},
		{
			description: "float with exponent",
			template:    "{value:float}",
			text:        "1.25e3",
			named:       map[string]string{"value": "1.25e3"},
		},
	}

	for _, testCase := range testCases {
		parser, err := NewParser(testCase.template, testCase.options...)
		require.NoError(t, err, testCase.description)
		result, err := parser.Match(testCase.text)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		if testCase.positional != nil {
			assert.Equal(t, testCase.positional, result.Positional(), testCase.description)
		}
		for name, expect := range testCase.named {
			actual, err := result.NamedRaw(name)
			require.NoError(t, err, testCase.description)
			assert.Equal(t, expect, actual, testCase.description)
		}
	}
}

func TestParser_Search(t *testing.T) {
	var testCases = []struct {
		description string
		template    string
		text        string
		expectErr   error
		expect      string
	}{
		{
			description: "match at start",
			template:    "Age: {:integer}",
			text:        "Age: 42",
			expect:      "42",
		},
		{
			description: "match in the middle",
			template:    "age={:integer}",
			text:        "name=John age=42 color=blue",
			expect:      "42",
		},
		{
			description: "leftmost match wins",
			template:    "id={:integer}",
			text:        "id=1 id=2 id=3",
			expect:      "1",
		},
		{
			description: "multiline subject",
			template:    "Age: {:integer}\n",
			text:        "Name: Rufus\nAge: 42\nColor: red\n",
			expect:      "42",
		},
		{
			description: "no occurrence",
			template:    "age={:integer}",
			text:        "name=John",
			expectErr:   ErrNoMatch,
		},
	}
	for _, testCase := range testCases {
		parser, err := NewParser(testCase.template)
		require.NoError(t, err, testCase.description)
		result, err := parser.Search(testCase.text)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		raw, err := result.Raw(0)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, raw, testCase.description)
	}
}

func TestParser_FindAll(t *testing.T) {
	var testCases = []struct {
		description string
		template    string
		options     []Option
		text        string
		expect      []string
	}{
		{
			description: "all words",
			template:    "{:word}",
			text:        "a b c",
			expect:      []string{"a", "b", "c"},
		},
		{
			description: "integers in prose",
			template:    "{:integer}",
			text:        "Numbers: 1, 2, 3",
			expect:      []string{"1", "2", "3"},
		},
		{
			description: "delimited fragments do not overlap",
			template:    ">{}<",
			text:        "<p>the <b>bold</b> text</p>",
			expect:      []string{"the ", "bold", " text"},
		},
		{
			description: "case sensitive find all",
			template:    "x({:word})x",
			options:     []Option{WithCaseSensitive(true)},
			text:        "X(hi)X",
			expect:      nil,
		},
		{
			description: "no occurrences",
			template:    "{:integer}",
			text:        "no digits here",
			expect:      nil,
		},
	}
	for _, testCase := range testCases {
		parser, err := NewParser(testCase.template, testCase.options...)
		require.NoError(t, err, testCase.description)
		var actual []string
		for result, err := range parser.FindAll(testCase.text) {
			require.NoError(t, err, testCase.description)
			raw, err := result.Raw(0)
			require.NoError(t, err, testCase.description)
			actual = append(actual, raw)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParser_FindAll_conversionFailure(t *testing.T) {
	parser, err := NewParser("#{:integer}", WithConverter("integer", NewConverter(`\d+`, func(text string) (Value, error) {
		if len(text) > 2 {
			return Value{}, fmt.Errorf("%w: integer %q", ErrTypeConversion, text)
		}
		return intConverter{}.Convert(text)
	})))
	require.NoError(t, err)

	var values []int64
	var failures int
	for result, err := range parser.FindAll("#1 #234 #56") {
		if err != nil {
			assert.True(t, errors.Is(err, ErrTypeConversion))
			failures++
			continue
		}
		value, err := result.Value(0)
		require.NoError(t, err)
		i, err := value.Int()
		require.NoError(t, err)
		values = append(values, i)
	}
	assert.Equal(t, []int64{1, 56}, values)
	assert.Equal(t, 1, failures)
}

func TestParse(t *testing.T) {
	result, err := Parse("It's {}, I love it!", "It's spam, I love it!")
	require.NoError(t, err)
	assert.Equal(t, []string{"spam"}, result.Positional())

	result, err = Parse("{name} is {age:integer}", "John is 25")
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "25"}, result.Positional())
	assert.Equal(t, map[string]string{"name": "John", "age": "25"}, result.NamedValues())
	age, err := result.Named("age")
	require.NoError(t, err)
	actual, err := age.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(25), actual)

	_, err = Parse("a{b", "whatever")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestSearch(t *testing.T) {
	result, err := Search("Age: {:integer}\n", "Name: Rufus\nAge: 42\nColor: red\n")
	require.NoError(t, err)
	value, err := result.Value(0)
	require.NoError(t, err)
	age, err := value.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(42), age)
}

func TestFindAll(t *testing.T) {
	results, err := FindAll("{:integer}", "1 2 3 4 5")
	require.NoError(t, err)
	var numbers []int64
	for _, result := range results {
		value, err := result.Value(0)
		require.NoError(t, err)
		i, err := value.Int()
		require.NoError(t, err)
		numbers = append(numbers, i)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, numbers)

	results, err = FindAll("{key:word}={value:word}", "name=John age=42 color=blue")
	require.NoError(t, err)
	require.Equal(t, 3, len(results))
	keys := []string{}
	for _, result := range results {
		key, err := result.NamedRaw("key")
		require.NoError(t, err)
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"name", "age", "color"}, keys)
}

func TestRoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		template    string
		values      []interface{}
	}{
		{
			description: "integer round trip",
			template:    "count={:integer}",
			values:      []interface{}{int64(-42)},
		},
		{
			description: "float round trip",
			template:    "ratio={:float}",
			values:      []interface{}{3.25},
		},
		{
			description: "word round trip",
			template:    "token={:word}",
			values:      []interface{}{"alpha_7"},
		},
		{
			description: "combined round trip",
			template:    "{:word} scored {:integer} at {:float}",
			values:      []interface{}{"Alice", int64(98), 0.5},
		},
	}
	slotVerbs := strings.NewReplacer("{:integer}", "%d", "{:float}", "%v", "{:word}", "%s")
	for _, testCase := range testCases {
		text := fmt.Sprintf(slotVerbs.Replace(testCase.template), testCase.values...)
		parser, err := NewParser(testCase.template)
		require.NoError(t, err, testCase.description)
		result, err := parser.Match(text)
		require.NoError(t, err, testCase.description)
		for i, expect := range testCase.values {
			value, err := result.Value(i)
			require.NoError(t, err, testCase.description)
			assert.EqualValues(t, expect, value.Interface(), testCase.description)
		}
	}
}

package testutil

// Sample texts shared by editing tests.
const (
	// Prose has words, punctuation and a blank line.
	Prose = "The quick brown fox\njumps over the lazy dog.\n\nfoo(bar, baz) -- qux"

	// Unicode mixes multi-byte, wide and combining runes.
	Unicode = "héllo wörld\n日本語 テキスト\néte café"

	// Code looks like a small Go function.
	Code = "func add(a, b int) int {\n\treturn a + b\n}"
)

// Samples lists every preset by name.
var Samples = map[string]string{
	"prose":   Prose,
	"unicode": Unicode,
	"code":    Code,
}

// WithProse seeds the session with Prose.
func (b *Builder) WithProse() *Builder {
	b.text = Prose
	return b
}

// WithUnicode seeds the session with Unicode.
func (b *Builder) WithUnicode() *Builder {
	b.text = Unicode
	return b
}

package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/definer"
	"github.com/fwojciec/definer/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "keeps emphasis markup", in: "<i>docga</i> and <b>dog</b>", want: "<i>docga</i> and <b>dog</b>"},
		{name: "drops scripts with content", in: "a<script>alert(1)</script>b", want: "ab"},
		{name: "strips attributes", in: `<span onclick="x()">dog</span>`, want: "<span>dog</span>"},
		{name: "unwraps disallowed elements", in: `<a href="/x">dog</a>`, want: "dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestSanitizer_SanitizeWord(t *testing.T) {
	t.Parallel()

	t.Run("scrubs every text field", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{
			Overview: []string{"<b>short</b><script>x</script>"},
			PrimaryDefs: []definer.Definition{
				{PartOfSpeech: "noun", Meaning: "<img src=x>pet", Examples: []string{"<i>ok</i><iframe></iframe>"}},
			},
			SecondaryDefGroups: [][]definer.Definition{
				{{PartOfSpeech: "noun", Meaning: "<em>animal</em><style>p{}</style>", Examples: []string{}}},
			},
			SlangDefs: []definer.Definition{
				{PartOfSpeech: "slang", Meaning: "friend<object></object>", Examples: []string{""}},
			},
		}

		bluemonday.NewSanitizer().SanitizeWord(w)

		assert.Equal(t, []string{"<b>short</b>"}, w.Overview)
		assert.Equal(t, "pet", w.PrimaryDefs[0].Meaning)
		assert.Equal(t, []string{"<i>ok</i>"}, w.PrimaryDefs[0].Examples)
		assert.Equal(t, "<em>animal</em>", w.SecondaryDefGroups[0][0].Meaning)
		assert.Equal(t, "friend", w.SlangDefs[0].Meaning)
	})

	t.Run("keeps paragraph breaks in origins", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{
			EtymOrigins: []definer.Origin{
				{PartOfSpeech: "noun", Origin: "Old English <i>docga</i>.<br>Second<script>x</script> paragraph."},
			},
			WikiOrigins: []definer.Origin{{PartOfSpeech: "noun", Origin: "From <span>dog</span>."}},
		}

		bluemonday.NewSanitizer().SanitizeWord(w)

		assert.Equal(t, "Old English <i>docga</i>.<br>Second paragraph.", w.EtymOrigins[0].Origin)
		assert.Equal(t, "From <span>dog</span>.", w.WikiOrigins[0].Origin)
	})

	t.Run("drops images without an absolute http URL", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{StockImages: []string{
			"https://img.example.com/1.jpg",
			"javascript:alert(1)",
			"/relative.jpg",
			"http://img.example.com/2.jpg",
		}}

		bluemonday.NewSanitizer().SanitizeWord(w)

		assert.Equal(t, []string{"https://img.example.com/1.jpg", "http://img.example.com/2.jpg"}, w.StockImages)
	})
}

package definer_test

import (
	"testing"
	"time"

	"github.com/fwojciec/definer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord_HasDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("false for empty word", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{StockImages: []string{"https://example.com/a.jpg"}}

		assert.False(t, w.HasDefinitions())
	})

	t.Run("true for sense groups alone", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{SecondaryDefGroups: [][]definer.Definition{{{Meaning: "a pet"}}}}

		assert.True(t, w.HasDefinitions())
	})

	t.Run("slang definitions do not count", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{SlangDefs: []definer.Definition{{PartOfSpeech: "slang", Meaning: "cool"}}}

		assert.False(t, w.HasDefinitions())
	})
}

func TestWord_IsStale(t *testing.T) {
	t.Parallel()

	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := &definer.Word{LastUpdated: updated.UnixMilli()}

	assert.False(t, w.IsStale(updated.Add(59*time.Minute), time.Hour))
	assert.True(t, w.IsStale(updated.Add(time.Hour), time.Hour))
}

func TestUnmarshalWord(t *testing.T) {
	t.Parallel()

	t.Run("round-trips last_updated as integer milliseconds", func(t *testing.T) {
		t.Parallel()

		w := &definer.Word{
			Overview:    []string{"short", "long"},
			PrimaryDefs: []definer.Definition{{PartOfSpeech: "noun", Meaning: "a rodent", Examples: []string{"a rat"}}},
			Sources:     []string{"www.vocabulary.com"},
			LastUpdated: 1700000000123,
		}

		data, err := definer.MarshalWord(w)
		require.NoError(t, err)
		assert.Contains(t, data, `"last_updated":1700000000123`)

		got, err := definer.UnmarshalWord(data)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	})

	t.Run("rejects record without last_updated", func(t *testing.T) {
		t.Parallel()

		_, err := definer.UnmarshalWord(`{"vocab_defs":[]}`)

		require.Error(t, err)
		assert.Equal(t, definer.EINVALID, definer.ErrorCode(err))
	})

	t.Run("rejects string timestamps", func(t *testing.T) {
		t.Parallel()

		_, err := definer.UnmarshalWord(`{"last_updated":"1700000000123"}`)

		require.Error(t, err)
		assert.Equal(t, definer.EINVALID, definer.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := definer.UnmarshalWord(`{`)

		require.Error(t, err)
		assert.Equal(t, definer.EINVALID, definer.ErrorCode(err))
	})
}

func TestMarshalWord(t *testing.T) {
	t.Parallel()

	t.Run("stores slang under urban_defs", func(t *testing.T) {
		t.Parallel()

		data, err := definer.MarshalWord(&definer.Word{
			SlangDefs:   []definer.Definition{{PartOfSpeech: "slang", Meaning: "a friend", Examples: []string{""}}},
			LastUpdated: 1,
		})
		require.NoError(t, err)

		assert.Contains(t, data, `"urban_defs":[{"part_of_speech":"slang","meaning":"a friend","examples":[""]}]`)
		assert.NotContains(t, data, "slang_defs")
	})

	t.Run("omits urban_defs without slang", func(t *testing.T) {
		t.Parallel()

		data, err := definer.MarshalWord(&definer.Word{LastUpdated: 1})
		require.NoError(t, err)

		assert.NotContains(t, data, "urban_defs")
	})
}

func TestDefinition_String(t *testing.T) {
	t.Parallel()

	d := definer.Definition{PartOfSpeech: "noun", Meaning: "a rodent", Examples: []string{"a rat", "a mouse"}}

	assert.Equal(t, "noun : a rodent\n- a rat\n- a mouse", d.String())
}

func TestOrigin_Paragraphs(t *testing.T) {
	t.Parallel()

	o := definer.Origin{Origin: "first" + definer.ParagraphBreak + "second"}

	assert.Equal(t, []string{"first", "second"}, o.Paragraphs())
	assert.Nil(t, definer.Origin{}.Paragraphs())
}

func TestResult_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilResult *definer.Result
	assert.True(t, nilResult.IsEmpty())
	assert.True(t, (&definer.Result{Kind: definer.ResultImages}).IsEmpty())
	assert.False(t, (&definer.Result{Images: []string{"x"}}).IsEmpty())
}

func TestWordKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "word:dog", definer.WordKey("dog"))
	assert.Equal(t, "lookups:dog", definer.LookupsKey("dog"))
}

package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTranslator struct {
	result string
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	s.calls++
	return s.result, s.err
}

func TestTranslateToEnglish_EnglishPassthrough(t *testing.T) {
	stub := &stubTranslator{result: "should never be used"}
	input := "This is already English and must come back byte-for-byte unchanged."

	got := TranslateToEnglish(context.Background(), stub, input, "")

	assert.Equal(t, input, got)
	assert.Zero(t, stub.calls, "backend must not be called for English input")
}

func TestTranslateToEnglish_UnknownPassthrough(t *testing.T) {
	stub := &stubTranslator{result: "nope"}

	got := TranslateToEnglish(context.Background(), stub, "😂😂😂", "")

	assert.Equal(t, "😂😂😂", got)
	assert.Zero(t, stub.calls)
}

func TestTranslateToEnglish_EmptyInput(t *testing.T) {
	stub := &stubTranslator{}

	assert.Equal(t, "", TranslateToEnglish(context.Background(), stub, "", ""))
	assert.Zero(t, stub.calls)
}

func TestTranslateToEnglish_TranslatesNonEnglish(t *testing.T) {
	stub := &stubTranslator{result: "I love this song"}

	got := TranslateToEnglish(context.Background(), stub, "Me encanta esta canción", "es")

	assert.Equal(t, "I love this song", got)
	assert.Equal(t, 1, stub.calls)
}

func TestTranslateToEnglish_BackendErrorFallsBack(t *testing.T) {
	stub := &stubTranslator{err: errors.New("backend down")}

	got := TranslateToEnglish(context.Background(), stub, "Me encanta esta canción", "es")

	assert.Equal(t, "Me encanta esta canción", got)
}

func TestTranslateToEnglish_EmptyResultFallsBack(t *testing.T) {
	stub := &stubTranslator{result: ""}

	got := TranslateToEnglish(context.Background(), stub, "Me encanta esta canción", "es")

	assert.Equal(t, "Me encanta esta canción", got)
}

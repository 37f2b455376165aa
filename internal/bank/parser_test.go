package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = "[J]Q001\n[P]1.2.1\n[I]MC\n[Q]What is X?\n[A]OptA\n[B]OptB\n[T]A\n"

func TestParseSingleRecord(t *testing.T) {
	questions, diags := Parse(sampleRecord, "")

	require.Len(t, questions, 1)
	assert.Empty(t, diags)

	q := questions[0]
	assert.Equal(t, "Q001", q.DisplayID)
	assert.Equal(t, "1.2.1", q.ChapterID)
	assert.Equal(t, "MC", q.InternalID)
	assert.Equal(t, "What is X?", q.Text)
	assert.Equal(t, "A", q.Answer)
	assert.Equal(t, map[string]string{"A": "OptA", "B": "OptB"}, q.Options)
	assert.Empty(t, q.ImagePath)
	assert.False(t, q.MultipleChoice())
	assert.Equal(t, []string{"A", "B"}, q.PresentOptions())
}

func TestParsePreservesRecordOrder(t *testing.T) {
	var b strings.Builder
	for _, id := range []string{"Q003", "Q001", "Q002"} {
		b.WriteString("[J]" + id + "\n[Q]body of " + id + "\n")
	}

	questions, _ := Parse(b.String(), "")

	require.Len(t, questions, 3)
	assert.Equal(t, "Q003", questions[0].DisplayID)
	assert.Equal(t, "Q001", questions[1].DisplayID)
	assert.Equal(t, "Q002", questions[2].DisplayID)
}

func TestParseSkipsChunkWithoutQuestionText(t *testing.T) {
	content := "[J]Q001\n[A]only an option\n" + // no [Q]: dropped
		"[J]Q002\n[Q]still parsed\n"

	questions, diags := Parse(content, "")

	require.Len(t, questions, 1)
	assert.Equal(t, "Q002", questions[0].DisplayID)

	require.Len(t, diags, 1)
	assert.Equal(t, 0, diags[0].Chunk)
	assert.Equal(t, "Q001", diags[0].Ref)
	assert.Contains(t, diags[0].Msg, "[Q]")
}

func TestParseIgnoresPreamble(t *testing.T) {
	content := "question bank v2\nexported 2024-01-05\n\n" + sampleRecord

	questions, _ := Parse(content, "")

	require.Len(t, questions, 1)
	assert.Equal(t, "Q001", questions[0].DisplayID)
}

func TestParseFirstTagOccurrenceWins(t *testing.T) {
	content := "[J]Q001\n[Q]first body\n[Q]second body\n[T]A\n[T]B\n"

	questions, _ := Parse(content, "")

	require.Len(t, questions, 1)
	assert.Equal(t, "first body", questions[0].Text)
	assert.Equal(t, "A", questions[0].Answer)
}

func TestParseTrimsValuesAndLines(t *testing.T) {
	content := "  [J]  Q001  \n\t[Q]\t spaced body \n"

	questions, _ := Parse(content, "")

	require.Len(t, questions, 1)
	assert.Equal(t, "Q001", questions[0].DisplayID)
	assert.Equal(t, "spaced body", questions[0].Text)
}

func TestParseMultipleChoiceAnswerKeptVerbatim(t *testing.T) {
	content := "[J]Q001\n[Q]pick two\n[A]a\n[B]b\n[C]c\n[T]CA\n"

	questions, _ := Parse(content, "")

	require.Len(t, questions, 1)
	assert.Equal(t, "CA", questions[0].Answer)
	assert.True(t, questions[0].MultipleChoice())
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleRecord), 0o644))

	b, err := Load(path, DefaultLoadOptions())
	require.NoError(t, err)

	assert.Len(t, b.Questions, 1)
	assert.Equal(t, path, b.Path)
	assert.Empty(t, b.MediaDir, "no photo dir next to the file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"), DefaultLoadOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptyBankFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte("[J]Q001\n[A]no question body\n"), 0o644))

	_, err := Load(path, DefaultLoadOptions())
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestLoadInfersSiblingPhotoDir(t *testing.T) {
	dir := t.TempDir()
	photoDir := filepath.Join(dir, "photo")
	require.NoError(t, os.Mkdir(photoDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(photoDir, "fig1.jpg"), []byte("jpg"), 0o644))

	path := filepath.Join(dir, "bank.txt")
	content := "[J]Q001\n[Q]see figure\n[F]fig1.jpg\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := Load(path, DefaultLoadOptions())
	require.NoError(t, err)

	assert.Equal(t, absOrSelf(photoDir), b.MediaDir)
	assert.Equal(t, absOrSelf(filepath.Join(photoDir, "fig1.jpg")), b.Questions[0].ImagePath)
	assert.Empty(t, b.Diagnostics)
}

func TestLoadMediaDirOverrideWins(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "figures")
	require.NoError(t, os.Mkdir(override, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(override, "fig1.png"), []byte("png"), 0o644))

	// A sibling photo dir exists but must lose to the override.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photo"), 0o755))

	path := filepath.Join(dir, "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte("[J]Q001\n[Q]see figure\n[F]fig1.png\n"), 0o644))

	b, err := Load(path, LoadOptions{MediaDir: override})
	require.NoError(t, err)
	assert.Equal(t, absOrSelf(override), b.MediaDir)
}

func TestResolveImageExtensionGuessing(t *testing.T) {
	dir := t.TempDir()
	// Only the .png variant exists; .jpg comes first in the guess order
	// and must be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img1.png"), []byte("png"), 0o644))

	path, found := resolveImage(dir, "img1.bmp")
	require.True(t, found)
	assert.Equal(t, absOrSelf(filepath.Join(dir, "img1.png")), path)
}

func TestResolveImageGuessOrderPrefersJpg(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img1.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img1.png"), []byte("png"), 0o644))

	path, found := resolveImage(dir, "img1")
	require.True(t, found)
	assert.Equal(t, absOrSelf(filepath.Join(dir, "img1.jpg")), path)
}

func TestUnresolvedImageIsDiagnosticNotError(t *testing.T) {
	dir := t.TempDir()

	questions, diags := Parse("[J]Q001\n[Q]see figure\n[F]img1.bmp\n", dir)

	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].ImagePath)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Msg, "img1.bmp")
}

func TestFigureWithoutMediaDirIsDiagnostic(t *testing.T) {
	questions, diags := Parse("[J]Q001\n[Q]see figure\n[F]img1.jpg\n", "")

	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].ImagePath)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Msg, "media directory")
}

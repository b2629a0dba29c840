package native

import (
	"path/filepath"
	"testing"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseDepRule(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	a := filepath.Join(root, "a.h")
	b := filepath.Join(root, "b.h")
	write(t, src, "c")
	write(t, a, "h")
	write(t, b, "h")

	rule := "main.o: main.c a.h \\\n b.h\n"
	includes := parseDepRule(rule, root, src)

	assert.Equal(t, []domain.Path{domain.NewPath(a), domain.NewPath(b)}, includes)
}

func TestParseDepRule_DropsScannedFileAndDuplicates(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	a := filepath.Join(root, "a.h")
	write(t, src, "c")
	write(t, a, "h")

	rule := "main.o: main.c a.h a.h ./a.h\n"
	includes := parseDepRule(rule, root, src)

	assert.Equal(t, []domain.Path{domain.NewPath(a)}, includes)
}

func TestParseDepRule_DropsMissingFiles(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	write(t, src, "c")

	rule := "main.o: main.c generated.h\n"
	assert.Empty(t, parseDepRule(rule, root, src))
}

func TestParseDepRule_NoRule(t *testing.T) {
	assert.Empty(t, parseDepRule("garbage output", t.TempDir(), "main.c"))
}

func TestParseDepRule_AbsolutePaths(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	a := filepath.Join(root, "sys.h")
	write(t, src, "c")
	write(t, a, "h")

	rule := "main.o: main.c " + a + "\n"
	includes := parseDepRule(rule, root, src)
	assert.Equal(t, []domain.Path{domain.NewPath(a)}, includes)
}

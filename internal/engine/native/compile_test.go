package native

import (
	"testing"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompileArgs_Executable(t *testing.T) {
	spec := &domain.BuildSpec{
		Kind:        domain.KindExecutable,
		Std:         "c17",
		Opt:         "2",
		IncludeDirs: []string{"include"},
		CFlags:      []string{"-Wall"},
	}

	args := compileArgs(spec, "src/main.c", "build/main.o", []string{"-DWITH_GTK"})
	assert.Equal(t, []string{
		"-std=c17", "-O2", "-Iinclude", "-Wall", "-DWITH_GTK",
		"-c", "src/main.c", "-o", "build/main.o",
	}, args)
}

func TestCompileArgs_SharedGetsPIC(t *testing.T) {
	spec := &domain.BuildSpec{Kind: domain.KindShared, Std: "c17", Opt: "2"}

	args := compileArgs(spec, "a.c", "a.o", nil)
	assert.Contains(t, args, "-fPIC")
}

func TestCompileArgs_StaticNeverGetsPIC(t *testing.T) {
	spec := &domain.BuildSpec{Kind: domain.KindStatic, Std: "c17", Opt: "2"}

	args := compileArgs(spec, "a.c", "a.o", nil)
	assert.NotContains(t, args, "-fPIC")
	assert.NotContains(t, args, "-shared")
}

func TestCompileArgs_NativeArch(t *testing.T) {
	spec := &domain.BuildSpec{Kind: domain.KindExecutable, Std: "c17", Opt: "3", NativeArch: true}

	args := compileArgs(spec, "a.c", "a.o", nil)
	assert.Contains(t, args, "-march=native")
}

func TestWithLanguageDefaults_C(t *testing.T) {
	spec := withLanguageDefaults(domain.BuildSpec{}, "c")
	assert.Equal(t, "cc", spec.Compiler)
	assert.Equal(t, "c17", spec.Std)
	assert.Equal(t, []string{"src/*.c", "*.c"}, spec.Sources)
}

func TestWithLanguageDefaults_CPP(t *testing.T) {
	spec := withLanguageDefaults(domain.BuildSpec{}, "c++")
	assert.Equal(t, "c++", spec.Compiler)
	assert.Equal(t, "c++17", spec.Std)
	assert.Equal(t, []string{"src/*.cpp", "src/*.cc", "*.cpp", "*.cc"}, spec.Sources)
}

func TestWithLanguageDefaults_KeepsExplicitValues(t *testing.T) {
	in := domain.BuildSpec{Compiler: "clang", Std: "c11", Sources: []string{"lib/*.c"}}
	spec := withLanguageDefaults(in, "c")
	assert.Equal(t, in, spec)
}

func TestSplitFlags(t *testing.T) {
	assert.Equal(t, []string{"-I/usr/include/gtk-4.0", "-lgtk-4"}, splitFlags(" -I/usr/include/gtk-4.0  -lgtk-4\n"))
	assert.Empty(t, splitFlags(""))
}

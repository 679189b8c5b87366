package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
)

// Expectation records whether a pattern matched an input when the file was
// generated.
type Expectation struct {
	Input string
	Match bool
}

// Entry is one pattern to declare.
type Entry struct {
	Name         string
	Pattern      string
	Expectations []Expectation
}

// Config holds the configuration for code generation.
type Config struct {
	Package          string
	OutputFile       string
	Entries          []Entry
	POSIX            bool // Use regexp.MustCompilePOSIX instead of regexp.MustCompile
	GenerateTestFile bool // Generate a table test per entry with expectations
}

// Generator builds Go source declaring compiled patterns.
type Generator struct {
	config Config
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{config: config}
}

func (g *Generator) mustCompileFunc() string {
	if g.config.POSIX {
		return "MustCompilePOSIX"
	}
	return "MustCompile"
}

// File returns the pattern declarations as a jennifer file.
func (g *Generator) File() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by prettyregex. DO NOT EDIT.")

	for _, e := range g.config.Entries {
		constName := ConstName(e.Name)

		f.Commentf("%s is the regular expression source of %s.", constName, e.Name)
		f.Const().Id(constName).Op("=").Lit(e.Pattern)
		f.Line()

		f.Commentf("%s is the compiled form of %s.", e.Name, constName)
		f.Var().Id(e.Name).Op("=").Qual("regexp", g.mustCompileFunc()).Call(jen.Id(constName))
		f.Line()
	}

	return f
}

// TestFile returns the generated tests, or nil if no entry records an
// expectation.
func (g *Generator) TestFile() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by prettyregex. DO NOT EDIT.")

	written := 0
	for _, e := range g.config.Entries {
		if len(e.Expectations) == 0 {
			continue
		}
		written++

		rows := make([]jen.Code, 0, len(e.Expectations))
		for _, exp := range e.Expectations {
			rows = append(rows, jen.Values(jen.Lit(exp.Input), jen.Lit(exp.Match)))
		}

		f.Func().Id(TestName(e.Name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
			jen.Id("tests").Op(":=").Index().Struct(
				jen.Id("input").String(),
				jen.Id("want").Bool(),
			).Values(rows...),
			jen.Line(),
			jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
				jen.If(
					jen.Id("got").Op(":=").Id(e.Name).Dot("MatchString").Call(jen.Id("tt").Dot("input")),
					jen.Id("got").Op("!=").Id("tt").Dot("want"),
				).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit(e.Name+".MatchString(%q) = %v, want %v"),
						jen.Id("tt").Dot("input"),
						jen.Id("got"),
						jen.Id("tt").Dot("want"),
					),
				),
			),
		)
		f.Line()
	}

	if written == 0 {
		return nil
	}
	return f
}

// Generate renders the declarations, and the tests if requested, and writes
// them to disk.
func (g *Generator) Generate() error {
	if err := save(g.File(), g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	Logger().Info("generated patterns",
		zap.String("file", g.config.OutputFile),
		zap.Int("patterns", len(g.config.Entries)),
	)

	if !g.config.GenerateTestFile {
		return nil
	}

	tf := g.TestFile()
	if tf == nil {
		Logger().Debug("no expectations recorded, skipping test file")
		return nil
	}
	testPath := TestFilePath(g.config.OutputFile)
	if err := save(tf, testPath); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	Logger().Info("generated tests", zap.String("file", testPath))

	return nil
}

// save renders f, which gofmt-formats it, and writes it to path.
func save(f *jen.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return f.Save(path)
}

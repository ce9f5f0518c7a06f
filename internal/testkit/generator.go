package testkit

import (
	"fmt"
	"math/rand"
	"sort"

	"marksheet/domain/partition"
)

// GeneratorConfig configures the marksheet fixture generator.
type GeneratorConfig struct {
	Students      int
	Subjects      int
	Seed          int64
	SplitMarkRate float64 // share of marks emitted as "internal+external"
	BadRowRate    float64 // share of rows given unusable register numbers
}

// DefaultGeneratorConfig returns sensible defaults for fixtures.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Students:      50,
		Subjects:      4,
		Seed:          42,
		SplitMarkRate: 0.7,
		BadRowRate:    0,
	}
}

// Generator produces deterministic raw marksheet tables for tests.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand

	deptCodes    []string
	subjectNames []string
}

// NewGenerator creates a seeded marksheet generator.
func NewGenerator(config GeneratorConfig) *Generator {
	codes := make([]string, 0, len(partition.Departments))
	for code := range partition.Departments {
		codes = append(codes, code)
	}
	// Map iteration order is random; sort for determinism.
	sort.Strings(codes)

	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
		deptCodes: codes,
		subjectNames: []string{
			"Mathematics", "English", "Statistics", "Programming",
			"Accountancy", "Economics", "Psychology", "Tamil",
		},
	}
}

// GenerateTable builds a raw table in the upload shape: no header row,
// three fixed columns followed by a 4-column block per subject.
func (g *Generator) GenerateTable() [][]any {
	rows := make([][]any, 0, g.config.Students)
	for i := 0; i < g.config.Students; i++ {
		rows = append(rows, g.generateRow(i))
	}
	return rows
}

func (g *Generator) generateRow(seq int) []any {
	row := []any{
		g.registerNo(seq),
		fmt.Sprintf("Student %03d", seq+1),
		fmt.Sprintf("C-%04d", 1000+seq),
	}
	for s := 0; s < g.config.Subjects; s++ {
		name := g.subjectNames[s%len(g.subjectNames)]
		row = append(row,
			fmt.Sprintf("SUB%d%02d", s+1, 101+s),
			name,
			g.marksCell(),
			g.resultCell(),
		)
	}
	return row
}

func (g *Generator) registerNo(seq int) string {
	if g.config.BadRowRate > 0 && g.rng.Float64() < g.config.BadRowRate {
		// Alternate between too-short and unknown-code register numbers.
		if seq%2 == 0 {
			return "XX"
		}
		return fmt.Sprintf("99Z23%04d", seq+1)
	}

	// Register format: two-digit batch year, three-character department
	// code, then a serial. The department code occupies characters 3-5.
	code := g.deptCodes[g.rng.Intn(len(g.deptCodes))]
	batch := 23 + g.rng.Intn(3)
	return fmt.Sprintf("%02d%s%04d", batch, code, seq+1)
}

func (g *Generator) marksCell() string {
	if g.rng.Float64() < g.config.SplitMarkRate {
		internal := g.rng.Intn(41)
		external := g.rng.Intn(61)
		return fmt.Sprintf("%03d+%03d", internal, external)
	}
	return fmt.Sprintf("%03d", g.rng.Intn(101))
}

func (g *Generator) resultCell() string {
	if g.rng.Float64() < 0.85 {
		return "PASS"
	}
	return "RA"
}

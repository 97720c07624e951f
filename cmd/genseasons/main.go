// Command genseasons writes a synthetic fire-season dataset in the loader's
// line format, useful for demos and for exercising the viewer without the
// real CAL FIRE figures. The output is re-parsed through the actual loader
// before it is written, so generated files always satisfy the dataset
// invariants.
//
// Usage:
//
//	go run ./cmd/genseasons -out demo_fire_data.txt -from 2008 -to 2020 -seed 1
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/loader"
)

var causes = []string{"Lightning", "Arson", "Powerline", "Vehicle", "Structure", "Unknown"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output dataset path")
	from := flag.Int("from", 2008, "first season year")
	to := flag.Int("to", domain.ReferenceYear, "last season year")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *from > *to {
		return fmt.Errorf("-from %d is after -to %d", *from, *to)
	}

	rng := rand.New(rand.NewSource(*seed))
	counties := countyNames()

	var sb strings.Builder
	for year := *from; year <= *to; year++ {
		writeSeason(&sb, rng, year, *from, counties)
	}

	// Round-trip through the loader so a generation bug can never produce a
	// file the viewer rejects.
	if _, err := loader.Parse(strings.NewReader(sb.String())); err != nil {
		return fmt.Errorf("generated dataset failed validation: %w", err)
	}

	if err := os.WriteFile(*out, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	log.Printf("wrote %d seasons to %s", *to-*from+1, *out)
	return nil
}

// writeSeason emits one season block: a mildly noisy upward trend in both
// fire count and acreage, so the viewer's extrapolation has a slope to find.
func writeSeason(sb *strings.Builder, rng *rand.Rand, year, from int, counties []string) {
	fmt.Fprintf(sb, "%d\n", year)

	acres := make([]int, domain.TopFiveLen)
	for i := range acres {
		acres[i] = 8000 + rng.Intn(150000)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(acres)))

	total := 0
	for _, a := range acres {
		county := counties[rng.Intn(len(counties))]
		cause := causes[rng.Intn(len(causes))]
		fmt.Fprintf(sb, "%s,%d,%s,%d\n", county, a, cause, rng.Intn(400))
		total += a
	}

	growth := year - from
	count := 4500 + 250*growth + rng.Intn(800)
	acreage := total + 200000 + 60000*growth + rng.Intn(400000)
	fmt.Fprintf(sb, "%d,%d\n", count, acreage)
}

func countyNames() []string {
	table := countymap.Default()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

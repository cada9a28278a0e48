// Package airports resolves airport codes to coordinates and display
// names. It ships a built-in table of major airports and accepts an
// optional JSON data file to extend or override it.
package airports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/curbz/sunside/pkg/geo"
)

// ErrNotFound signals an airport code the resolver does not know.
var ErrNotFound = errors.New("airport not found")

// Airport is one resolved airport record.
type Airport struct {
	Code  string         `json:"code"`
	Name  string         `json:"name"`
	City  string         `json:"city"`
	Coord geo.Coordinate `json:"coord"`
}

// Resolver looks up airports by IATA code, case-insensitively.
type Resolver struct {
	byCode map[string]Airport
	titler cases.Caser
}

// NewResolver returns a resolver seeded with the built-in airport table.
func NewResolver() *Resolver {
	r := &Resolver{
		byCode: make(map[string]Airport, len(builtinAirports)),
		titler: cases.Title(language.English),
	}
	for code, apt := range builtinAirports {
		r.byCode[code] = apt
	}
	return r
}

// LoadFile merges airport records from a JSON file keyed by code. File
// entries win over built-in ones. City and display names are title-cased
// so lower-case data files render cleanly.
func (r *Resolver) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open airports data file %s: %w", path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("could not read airports data file %s: %w", path, err)
	}

	var records map[string]Airport
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("error unmarshaling airports data file %s: %w", path, err)
	}

	for code, apt := range records {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || !apt.Coord.Valid() {
			return fmt.Errorf("invalid airport record %q in %s", code, path)
		}
		apt.Code = code
		apt.Name = r.titler.String(apt.Name)
		apt.City = r.titler.String(apt.City)
		r.byCode[code] = apt
	}
	return nil
}

// Resolve returns the airport for a code, or ErrNotFound.
func (r *Resolver) Resolve(code string) (Airport, error) {
	apt, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return apt, nil
}

// Codes returns all known codes, sorted.
func (r *Resolver) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

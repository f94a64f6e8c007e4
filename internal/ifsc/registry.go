package ifsc

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed banks.csv
var embeddedBanks string

// Bank is one row of a bank registry CSV.
type Bank struct {
	Code string `csv:"bank_code"`
	Name string `csv:"bank_name"`
}

// Registry maps bank codes (the first four characters of an IFSC) to bank
// names.
type Registry struct {
	banks map[string]string
}

// NewRegistry builds a registry from the given banks.
func NewRegistry(banks ...Bank) *Registry {
	r := &Registry{banks: make(map[string]string, len(banks))}
	for _, b := range banks {
		code := strings.ToUpper(strings.TrimSpace(b.Code))
		if code == "" {
			continue
		}
		r.banks[code] = strings.TrimSpace(b.Name)
	}
	return r
}

// DefaultRegistry returns the registry compiled into the binary.
func DefaultRegistry() (*Registry, error) {
	return ParseRegistry(strings.NewReader(embeddedBanks))
}

// LoadRegistry reads a registry CSV from path. An empty path returns the
// default registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank registry: %w", err)
	}
	defer f.Close()
	return ParseRegistry(f)
}

// ParseRegistry parses CSV with a bank_code,bank_name header.
func ParseRegistry(in io.Reader) (*Registry, error) {
	var banks []Bank
	if err := gocsv.Unmarshal(in, &banks); err != nil {
		return nil, fmt.Errorf("failed to parse bank registry: %w", err)
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("bank registry is empty")
	}
	return NewRegistry(banks...), nil
}

// BankName returns the registered name for a bank code.
func (r *Registry) BankName(code string) (string, bool) {
	name, ok := r.banks[strings.ToUpper(code)]
	return name, ok
}

// Len returns the number of registered banks.
func (r *Registry) Len() int {
	return len(r.banks)
}

// Package positions loads normalized legs from a broker export and
// groups them by underlying and opening date for the classification
// core.
package positions

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/domain"
)

// Loader parses broker-export CSV files into legs. Malformed rows are
// skipped with a warning; a single bad row never aborts the load.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a new position loader.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		log: log.With().Str("component", "position_loader").Logger(),
	}
}

// LoadFile reads legs from a CSV file on disk.
func (l *Loader) LoadFile(path string) ([]domain.Leg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open positions file: %w", err)
	}
	defer f.Close()

	return l.Load(f)
}

// Load reads legs from CSV data. The first row must be a header; the
// recognized columns are underlying, kind, quantity, option_type,
// strike, expiration, open_date, cost_basis, open_pl and the four
// greeks. Unknown columns are ignored.
func (l *Loader) Load(r io.Reader) ([]domain.Leg, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["underlying"]; !ok {
		return nil, fmt.Errorf("positions CSV missing 'underlying' column")
	}

	var legs []domain.Leg
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			l.log.Warn().Err(err).Int("line", line).Msg("Skipping unreadable CSV row")
			continue
		}

		leg, err := l.parseLeg(record, cols)
		if err != nil {
			l.log.Warn().Err(err).Int("line", line).Msg("Skipping malformed position row")
			continue
		}
		legs = append(legs, leg)
	}

	l.log.Info().Int("legs", len(legs)).Msg("Loaded positions")
	return legs, nil
}

func (l *Loader) parseLeg(record []string, cols map[string]int) (domain.Leg, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	underlying := strings.ToUpper(field("underlying"))
	if underlying == "" {
		return domain.Leg{}, fmt.Errorf("empty underlying")
	}

	qty, err := strconv.ParseFloat(field("quantity"), 64)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("bad quantity %q: %w", field("quantity"), err)
	}

	leg := domain.Leg{
		Underlying: underlying,
		Quantity:   qty,
		CostBasis:  parseFloatOrZero(field("cost_basis")),
		OpenPL:     parseFloatOrZero(field("open_pl")),
		Greeks: domain.Greeks{
			Delta: parseNullableFloat(field("delta")),
			Gamma: parseNullableFloat(field("gamma")),
			Theta: parseNullableFloat(field("theta")),
			Vega:  parseNullableFloat(field("vega")),
		},
	}

	switch strings.ToLower(field("kind")) {
	case "stock", "equity", "":
		leg.Kind = domain.AssetStock
	case "option":
		leg.Kind = domain.AssetOption
	default:
		return domain.Leg{}, fmt.Errorf("unknown asset kind %q", field("kind"))
	}

	if leg.Kind == domain.AssetOption {
		switch strings.ToLower(field("option_type")) {
		case "call", "c":
			leg.OptionType = domain.OptionCall
		case "put", "p":
			leg.OptionType = domain.OptionPut
		default:
			return domain.Leg{}, fmt.Errorf("option leg with unknown option_type %q", field("option_type"))
		}
		leg.Strike = parseNullableFloat(field("strike"))
		leg.Expiration = parseNullableDate(field("expiration"))
	}
	leg.OpenDate = parseNullableDate(field("open_date"))

	return leg, nil
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseNullableFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseNullableDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sharath018/temple-donation-docs/internal/donation"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeRecord(data []byte) (donation.Record, error) {
	var rec donation.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return donation.Record{}, fmt.Errorf("decode donation: %w", err)
	}
	return rec, nil
}

// decodeGroup reads a donor group, or with aggregate set a plain list of
// donations whose totals are computed here.
func decodeGroup(data []byte, aggregate bool) (donation.DonorGroup, error) {
	if aggregate {
		var records []donation.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return donation.DonorGroup{}, fmt.Errorf("decode donations: %w", err)
		}
		return donation.Aggregate(records), nil
	}

	var g donation.DonorGroup
	if err := json.Unmarshal(data, &g); err != nil {
		return donation.DonorGroup{}, fmt.Errorf("decode donor group: %w", err)
	}
	return g, nil
}

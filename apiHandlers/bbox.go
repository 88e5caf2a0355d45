package apiHandlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miocluster/geocluster/entities"
)

// parseBBox parses a "west,south,east,north" query parameter into a
// BoundingBox.
func parseBBox(raw string) (entities.BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return entities.BoundingBox{}, fmt.Errorf("bbox must have 4 comma-separated values: west,south,east,north")
	}

	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return entities.BoundingBox{}, fmt.Errorf("bbox value %q is not a number", p)
		}
		values[i] = v
	}

	return entities.BoundingBox{West: values[0], South: values[1], East: values[2], North: values[3]}, nil
}

package impl

import (
	"fmt"
	"strconv"
)

func coordinateDetails(lat, lng float64) string {
	return fmt.Sprintf("latitude=%g longitude=%g", lat, lng)
}

func batchIndexDetails(i int) string {
	return "invalid coordinate at index " + strconv.Itoa(i)
}

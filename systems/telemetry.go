package systems

import (
	"log"

	"github.com/ferricfire/spark/components"
	"github.com/gocarina/gocsv"
	"github.com/yohamta/donburi/ecs"
)

// DumpTelemetry renders the recorded frame stats as CSV and persists the
// report. Called on demand from input handling.
func DumpTelemetry(e *ecs.ECS) {
	pg := GetOrCreatePlayground(e)
	if len(pg.Samples) == 0 {
		log.Println("No telemetry samples recorded yet")
		return
	}

	rows := make([]*components.TelemetrySample, len(pg.Samples))
	for i := range pg.Samples {
		rows[i] = &pg.Samples[i]
	}

	csv, err := gocsv.MarshalString(&rows)
	if err != nil {
		log.Printf("Warning: Could not serialize telemetry: %v", err)
		return
	}

	if err := SaveTelemetry([]byte(csv)); err == nil {
		log.Printf("Dumped %d telemetry samples", len(rows))
	}
}

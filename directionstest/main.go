// Manual scratch binary for poking the live directions API. Not wired into
// the main CLI; run it directly with an API key in the environment to eyeball
// the raw transit steps a route returns.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
)

func main() {
	key := config.LoadAPIKey()
	if key == "" {
		fmt.Printf("Set %s before running this\n", config.APIKeyEnvVar)
		os.Exit(1)
	}

	client := directions.NewClient(key)

	fmt.Println("Fetching live transit directions...")

	resp, err := client.Routes(context.Background(), directions.Request{
		Origin:        "2200 N Lincoln Ave, Chicago, IL",
		Destination:   "Downtown Transit Center",
		Mode:          "transit",
		TransitMode:   "bus",
		DepartureTime: "now",
		Alternatives:  true,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Status: %s, routes: %d\n", resp.Status, len(resp.Routes))

	for ri, route := range resp.Routes {
		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				if step.TransitDetails == nil {
					continue
				}
				td := step.TransitDetails
				live := "scheduled"
				if td.DepartureTime.HasValue() {
					live = "live"
				}
				text := ""
				if td.DepartureTime != nil {
					text = td.DepartureTime.Text
				}
				fmt.Printf("route %d: line %q from %q at %s (%s) -> %s\n",
					ri, td.Line.ShortName, td.DepartureStop.Name, text, live, td.Headsign)
			}
		}
	}
}

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DiagnosticReport is the body of GET /test. Every field is a plain
// description so failures can be reported in-band.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Galaxy Bites backend ready"})
	}
}

// TestDatabase reports store availability. It always answers 200.
func TestDatabase(store DocumentStore, databaseURLSet bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := DiagnosticReport{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			DatabaseURL:      "❌ Not Set",
			DatabaseName:     "❌ Not Set",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		defer func() {
			if r := recover(); r != nil {
				report.Database = "❌ Error: " + truncate(fmt.Sprint(r), 80)
			}
			c.JSON(http.StatusOK, report)
		}()

		if !storeAvailable(store) {
			report.Database = "⚠️ Available but not initialized"
			return
		}

		report.Database = "✅ Available"
		if databaseURLSet {
			report.DatabaseURL = "✅ Set"
		}
		report.DatabaseName = "✅ Connected"
		if name := store.Name(); name != "" {
			report.DatabaseName = name
		}

		names, err := store.CollectionNames(c.Request.Context())
		if err != nil {
			report.Database = "⚠️ Connected but error: " + truncate(err.Error(), 80)
			return
		}
		if names != nil {
			report.Collections = names
		}
		report.Database = "✅ Connected & Working"
		report.ConnectionStatus = "Connected"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

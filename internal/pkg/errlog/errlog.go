package errlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"onboard-api/internal/pkg/datetime"
)

const logsDir = "logs/error"

var nowFunc = time.Now

// Record logs an error with the originating resource as context, both to
// the console and to a dated file under logs/error. File-sink failures are
// swallowed after a console note; error recording never fails a request.
func Record(err error, resource string) {
	now := nowFunc()

	log.Printf("❌ [%s] %v", resource, err)

	dir := filepath.Join(logsDir, datetime.Date(now))
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		log.Printf("⚠️ errlog: cannot create %s: %v", dir, mkErr)
		return
	}

	entry := fmt.Sprintf("when: %s\nresource: %s\nerror: %v\n",
		datetime.DateTime(now), resource, err)

	path := filepath.Join(dir, datetime.Clock(now))
	if wErr := os.WriteFile(path, []byte(entry), 0o644); wErr != nil {
		log.Printf("⚠️ errlog: cannot write %s: %v", path, wErr)
	}
}

package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development by writing every
// message to dir instead of delivering it.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	Message
}

// Send writes <timestamp>_<subject>.{html,txt,json} files to the directory.
func (d *DevSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject)))
	id := uuid.NewString()

	files := map[string][]byte{
		".html": []byte(msg.HTMLBody),
		".txt":  []byte(msg.TextBody),
	}
	meta, err := json.MarshalIndent(devMetadata{MessageID: id, Timestamp: now.Format(time.RFC3339), Message: msg}, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	files[".json"] = meta

	for ext, data := range files {
		if err := os.WriteFile(base+ext, data, 0o644); err != nil {
			return Result{}, fmt.Errorf("%w: failed to write %s file: %v", ErrFailedToSendEmail, ext, err)
		}
	}

	return Result{MessageID: id, SubmittedAt: now}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}

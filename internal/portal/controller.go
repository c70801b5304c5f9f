package portal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"wifi-access-portal/internal/wifi"
)

// Stage is the portal's display state. There are exactly two: collecting the
// visitor's details, and presenting the credentials once they validate.
type Stage int

const (
	StageCollecting Stage = iota
	StageGranted
)

func (s Stage) String() string {
	switch s {
	case StageCollecting:
		return "collecting"
	case StageGranted:
		return "granted"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Clipboard is the environment's copy capability. The HTTP deployment hands
// the literal string back to the client, which performs the platform copy;
// tests substitute a fake.
type Clipboard interface {
	Copy(text string) error
}

// Encoder renders a QR payload as an image. Failures are degraded-mode only:
// the textual credentials remain the primary output.
type Encoder func(payload string) ([]byte, error)

// ErrNotGranted is returned for credential operations attempted before a
// valid submit.
var ErrNotGranted = errors.New("credentials not granted yet")

// Controller owns one visitor session's stage machine:
//
//	Collecting --submit(valid)--> Granted --reset--> Collecting
//
// An invalid submit stays in Collecting with the error map populated. QR
// generation is the only asynchronous work; everything else runs to
// completion inside the calling request.
type Controller struct {
	cred   wifi.Credential
	encode Encoder
	log    *zap.Logger

	mu    sync.Mutex
	stage Stage
	form  FormInput
	errs  ValidationResult

	// qrDone identifies the current generation job; a job that finishes
	// after a reset or resubmit finds a different channel here and drops
	// its result.
	qrDone chan struct{}
	qrPNG  []byte
}

func NewController(cred wifi.Credential, encode Encoder, log *zap.Logger) *Controller {
	return &Controller{
		cred:   cred,
		encode: encode,
		log:    log,
	}
}

func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

func (c *Controller) Form() FormInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) Errors() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs
}

// Credential returns the fixed network record. It is constant for the
// process lifetime, so no lock is needed.
func (c *Controller) Credential() wifi.Credential { return c.cred }

func (c *Controller) SetName(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Name = v
}

// SetPhone stores the keystroke value reduced to at most ten digits, so the
// held form state is always already normalized.
func (c *Controller) SetPhone(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Phone = NormalizePhone(raw)
}

// Submit revalidates the whole form. On success it transitions to Granted
// and starts the QR job in the background; the caller can render the
// credential text immediately without waiting on it. On failure the error
// map is retained and the stage does not change.
func (c *Controller) Submit() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := Validate(c.form)
	if !errs.Valid() {
		c.errs = errs
		return errs
	}

	c.errs = nil
	c.stage = StageGranted

	done := make(chan struct{})
	c.qrDone = done
	c.qrPNG = nil
	go c.generate(c.cred.Payload(), done)

	return errs
}

// Reset returns to Collecting and discards the form, the error map, and any
// generated QR image.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = StageCollecting
	c.form = FormInput{}
	c.errs = nil
	c.qrDone = nil
	c.qrPNG = nil
}

func (c *Controller) generate(payload string, done chan struct{}) {
	defer close(done)

	png, err := c.encode(payload)
	if err != nil {
		// Degraded mode: the page keeps showing the textual credentials.
		c.log.Warn("qr image generation failed", zap.Error(err))
		return
	}

	c.mu.Lock()
	if c.qrDone == done {
		c.qrPNG = png
	}
	c.mu.Unlock()
}

// QRImage blocks until the current generation job resolves or ctx ends. The
// second return is false when there is no image to show: not granted yet,
// generation failed, or the job was superseded.
func (c *Controller) QRImage(ctx context.Context) ([]byte, bool) {
	c.mu.Lock()
	done := c.qrDone
	c.mu.Unlock()

	if done == nil {
		return nil, false
	}

	select {
	case <-ctx.Done():
		return nil, false
	case <-done:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.qrDone != done || c.qrPNG == nil {
		return nil, false
	}
	return c.qrPNG, true
}

// CopyField hands the literal SSID or password to the clipboard capability.
// Only valid in the Granted stage; a failure never alters form state.
func (c *Controller) CopyField(field string, clip Clipboard) error {
	if c.Stage() != StageGranted {
		return ErrNotGranted
	}

	switch field {
	case "ssid":
		return clip.Copy(c.cred.SSID)
	case "password":
		return clip.Copy(c.cred.Password)
	default:
		return fmt.Errorf("nothing to copy for field %q", field)
	}
}

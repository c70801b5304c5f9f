package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wifi-access-portal/internal/wifi"
)

func testController(encode Encoder) *Controller {
	if encode == nil {
		encode = func(string) ([]byte, error) { return []byte("png"), nil }
	}
	return NewController(wifi.Network(), encode, zap.NewNop())
}

func fillValid(c *Controller) {
	c.SetName("Asha Rao")
	c.SetPhone("(555) 123-4567")
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func TestController_ValidSubmitGrants(t *testing.T) {
	c := testController(nil)
	require.Equal(t, StageCollecting, c.Stage())

	fillValid(c)
	errs := c.Submit()

	assert.True(t, errs.Valid())
	assert.Equal(t, StageGranted, c.Stage())
	assert.Equal(t, "5551234567", c.Form().Phone)
}

func TestController_InvalidSubmitStaysCollecting(t *testing.T) {
	c := testController(nil)
	c.SetName("  ")
	c.SetPhone("123")

	errs := c.Submit()

	assert.Len(t, errs, 2)
	assert.Equal(t, StageCollecting, c.Stage())
	assert.Equal(t, errs, c.Errors())
}

func TestController_PayloadConstant(t *testing.T) {
	assert.Equal(t,
		"WIFI:T:WPA;S:Airtel_Fiber;P:Tech@4230;H:false;;",
		wifi.Network().Payload(),
	)
}

func TestController_QRPayloadPassedToEncoder(t *testing.T) {
	var got string
	c := testController(func(payload string) ([]byte, error) {
		got = payload
		return []byte("png"), nil
	})
	fillValid(c)
	c.Submit()

	_, ok := c.QRImage(context.Background())
	require.True(t, ok)
	assert.Equal(t, "WIFI:T:WPA;S:Airtel_Fiber;P:Tech@4230;H:false;;", got)
}

func TestController_CredentialTextNeverWaitsOnQR(t *testing.T) {
	release := make(chan struct{})
	c := testController(func(string) ([]byte, error) {
		<-release
		return []byte("png"), nil
	})
	fillValid(c)
	c.Submit()

	// Granted (and its credential text) is available while generation
	// is still in flight.
	assert.Equal(t, StageGranted, c.Stage())
	assert.Equal(t, "Airtel_Fiber", c.Credential().SSID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, ok := c.QRImage(ctx)
	assert.False(t, ok, "image must not resolve before generation finishes")

	close(release)
	png, ok := c.QRImage(context.Background())
	require.True(t, ok)
	assert.Equal(t, []byte("png"), png)
}

func TestController_QRFailureIsDegradedNotFatal(t *testing.T) {
	c := testController(func(string) ([]byte, error) {
		return nil, errors.New("encoder broken")
	})
	fillValid(c)
	c.Submit()

	assert.Equal(t, StageGranted, c.Stage())

	_, ok := c.QRImage(context.Background())
	assert.False(t, ok)
}

func TestController_ResetClearsEverything(t *testing.T) {
	c := testController(nil)
	fillValid(c)
	c.Submit()
	_, ok := c.QRImage(context.Background())
	require.True(t, ok)

	c.Reset()

	assert.Equal(t, StageCollecting, c.Stage())
	assert.Equal(t, FormInput{}, c.Form())
	assert.Empty(t, c.Errors())
	_, ok = c.QRImage(context.Background())
	assert.False(t, ok, "no residual QR image after reset")
}

func TestController_StaleQRJobDropsResult(t *testing.T) {
	release := make(chan struct{})
	c := testController(func(string) ([]byte, error) {
		<-release
		return []byte("stale"), nil
	})
	fillValid(c)
	c.Submit()
	c.Reset()
	close(release)

	// The job from before the reset must not resurface.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, ok := c.QRImage(ctx)
	assert.False(t, ok)
	assert.Equal(t, StageCollecting, c.Stage())
}

func TestController_CopyField(t *testing.T) {
	c := testController(nil)
	clip := &fakeClipboard{}

	// Copy is a Granted-stage action.
	assert.ErrorIs(t, c.CopyField("ssid", clip), ErrNotGranted)

	fillValid(c)
	c.Submit()

	require.NoError(t, c.CopyField("ssid", clip))
	require.NoError(t, c.CopyField("password", clip))
	assert.Equal(t, []string{"Airtel_Fiber", "Tech@4230"}, clip.copied)

	assert.Error(t, c.CopyField("hostname", clip))
}

func TestController_CopyFailureLeavesStateAlone(t *testing.T) {
	c := testController(nil)
	fillValid(c)
	c.Submit()

	clip := &fakeClipboard{err: errors.New("clipboard unavailable")}
	assert.Error(t, c.CopyField("ssid", clip))
	assert.Equal(t, StageGranted, c.Stage())
	assert.Empty(t, c.Errors())
}

func TestController_PhoneNormalizedOnEntry(t *testing.T) {
	c := testController(nil)
	c.SetPhone("55-5A12#3456789")
	assert.Equal(t, "5551234567", c.Form().Phone)
}

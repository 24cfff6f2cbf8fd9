package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"revo-utils/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	s.loaded = true
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	mgr := loader.NewManager(nil)

	on := &stubFeature{name: "tables", enabled: true}
	off := &stubFeature{name: "assets", enabled: false}
	mgr.Register(on)
	mgr.Register(off)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, mgr.Features(), 2)

	resp, err := app.Test(httptest.NewRequest("GET", "/tables", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/assets", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllErrors(t *testing.T) {
	t.Run("Load Failure", func(t *testing.T) {
		mgr := loader.NewManager(nil)
		mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
		err := mgr.LoadAll(fiber.New())
		assert.EqualError(t, err, "failed to load feature broken: boom")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mgr := loader.NewManager(nil)
		mgr.Register(&stubFeature{name: "tables", enabled: true})
		mgr.Register(&stubFeature{name: "tables", enabled: true})
		err := mgr.LoadAll(fiber.New())
		assert.EqualError(t, err, `feature "tables" registered twice`)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `<?xml version="1.0"?>
<muse_config>
  <wrapper name="dtuio_depthsense">
    <config>
      <target>127.0.0.1:3333</target>
      <device>/dev/depth0</device>
      <ui>console</ui>
      <sensor uuid="11111111-1111-1111-1111-111111111111">
        <viewport width="1920" height="1080"/>
        <active_quadrangle>
          <top_left x="0" y="0"/>
          <top_right x="1920" y="0"/>
          <bottom_left x="0" y="1080"/>
          <bottom_right x="1920" y="1080"/>
        </active_quadrangle>
        <mapping>
          <virtual_axis>x</virtual_axis>
          <virtual_axis>y</virtual_axis>
          <ignore>pressure</ignore>
        </mapping>
        <group uuid="22222222-2222-2222-2222-222222222222"/>
        <neighbour uuid="33333333-3333-3333-3333-333333333333" azimuth="1.57" altitude="0" distance="2.5"/>
      </sensor>
      <tuning>{"join_distance_limit": 75, "append_interval": 60}</tuning>
      <resolution>640x480</resolution>
    </config>
  </wrapper>
</muse_config>`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "muse_config.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeDoc(t, validDoc)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Wrappers, 1)

	w := cfg.Wrappers[0]
	assert.Equal(t, "dtuio_depthsense", w.Name)
	assert.Equal(t, "127.0.0.1:3333", w.Config.Target)
	assert.Equal(t, UIConsole, w.Config.UI)
	require.Len(t, w.Config.Sensors, 1)

	s := w.Config.Sensors[0]
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", s.UUID)
	assert.Equal(t, 1920.0, s.Viewport.Width)
	assert.Equal(t, 1920.0, s.ActiveQuadrangle.TopRight.X)
	assert.Equal(t, []string{"x", "y"}, s.Mapping.VirtualAxis)
	require.NotNil(t, s.Group)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", s.Group.UUID)
	require.Len(t, s.Neighbours, 1)
	assert.InDelta(t, 2.5, s.Neighbours[0].Distance, 1e-9)

	require.NotNil(t, w.Config.Tuning)
	assert.InDelta(t, 75.0, w.Config.Tuning.GetJoinDistanceLimit(), 1e-9)
	assert.Equal(t, 60, w.Config.Tuning.GetAppendInterval())

	require.Len(t, w.Config.DeviceOptions, 1)
	assert.Equal(t, "resolution", w.Config.DeviceOptions[0].XMLName.Local)
	assert.Equal(t, "640x480", w.Config.DeviceOptions[0].Value)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestLoad_MalformedXML(t *testing.T) {
	path := writeDoc(t, "<muse_config><wrapper>")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestLoad_MissingTarget(t *testing.T) {
	doc := `<muse_config><wrapper name="w"><config><device>/dev/x</device></config></wrapper></muse_config>`
	path := writeDoc(t, doc)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "target")
}

func TestLoad_InvalidUIMode(t *testing.T) {
	doc := `<muse_config><wrapper name="w"><config><target>h:1</target><ui>bogus</ui></config></wrapper></muse_config>`
	path := writeDoc(t, doc)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui")
}

func TestLoad_SensorMissingUUID(t *testing.T) {
	doc := `<muse_config><wrapper name="w"><config><target>h:1</target>
      <sensor><viewport width="1" height="1"/></sensor>
      </config></wrapper></muse_config>`
	path := writeDoc(t, doc)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
}

func TestLoad_NoWrappers(t *testing.T) {
	path := writeDoc(t, `<muse_config></muse_config>`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wrapper")
}

func TestTuningConfig_Defaults(t *testing.T) {
	var tc *TuningConfig
	assert.Equal(t, 50.0, tc.GetJoinDistanceLimit())
	assert.Equal(t, 5, tc.GetHistoryCapacity())
	assert.Equal(t, 30, tc.GetAppendInterval())
	assert.Equal(t, "", tc.GetFilterPattern())
	assert.Equal(t, 5*time.Second, tc.GetTopologyInterval())
	assert.Equal(t, 16*time.Millisecond, tc.GetSendInterval())
}

func TestTuningConfig_InvalidEmbeddedJSON(t *testing.T) {
	doc := `<muse_config><wrapper name="w"><config><target>h:1</target><tuning>not json</tuning></config></wrapper></muse_config>`
	path := writeDoc(t, doc)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestTuningConfig_ValidateRanges(t *testing.T) {
	bad := -1.0
	tc := &TuningConfig{JoinDistanceLimit: &bad}
	err := tc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "join_distance_limit")
}

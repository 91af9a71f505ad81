package deployment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContext = `env:
  name: prod-net
  project: acme-prod
  deployment: networking
properties:
  subnetworks:
    - name: web
      region: us-central1
      cidr: 10.0.0.0/24
    - name: db
      region: us-east1
      cidr: 10.0.1.0/24
      description: Database tier
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleContext), 0600))

	ctx, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "prod-net", ctx.Env.Name)
	assert.Equal(t, "acme-prod", ctx.Env.Project)
	assert.Equal(t, "networking", ctx.Env.Deployment)
	require.Len(t, ctx.Properties.Subnetworks, 2)

	web := ctx.Properties.Subnetworks[0]
	require.NotNil(t, web.Name)
	assert.Equal(t, "web", *web.Name)
	assert.Equal(t, "us-central1", *web.Region)
	assert.Equal(t, "10.0.0.0/24", *web.CIDR)
	assert.Nil(t, web.Description)

	db := ctx.Properties.Subnetworks[1]
	require.NotNil(t, db.Description)
	assert.Equal(t, "Database tier", *db.Description)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read context file")
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	_, err := LoadBytes([]byte("env: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadBytes_PresenceIsPreserved(t *testing.T) {
	ctx, err := LoadBytes([]byte(`env:
  name: n
properties:
  subnetworks:
    - name: ""
      cidr: 10.0.0.0/24
`))
	require.NoError(t, err)
	require.Len(t, ctx.Properties.Subnetworks, 1)

	spec := ctx.Properties.Subnetworks[0]
	require.NotNil(t, spec.Name, "an empty value is still a present key")
	assert.Empty(t, *spec.Name)
	assert.Equal(t, []string{KeyRegion}, spec.Missing())
}

func TestLoadBytes_Empty(t *testing.T) {
	ctx, err := LoadBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, ctx.Env.Name)
	assert.Empty(t, ctx.Properties.Subnetworks)
}

func TestFromMaps(t *testing.T) {
	env := map[string]any{
		"name":    "prod-net",
		"project": "acme",
	}
	props := map[string]any{
		"subnetworks": []any{
			map[string]any{"name": "web", "region": "us-central1", "cidr": "10.0.0.0/24"},
			map[string]any{"name": 42, "region": "eu-west1", "cidr": "10.0.2.0/24", "description": "numbers"},
			map[string]any{"region": "asia-east1"},
		},
		"unrelated": true,
	}

	ctx, err := FromMaps(env, props)
	require.NoError(t, err)

	assert.Equal(t, "prod-net", ctx.Env.Name)
	assert.Equal(t, "acme", ctx.Env.Project)
	require.Len(t, ctx.Properties.Subnetworks, 3)

	assert.Equal(t, "web", *ctx.Properties.Subnetworks[0].Name)
	assert.Equal(t, "42", *ctx.Properties.Subnetworks[1].Name)
	assert.Equal(t, "numbers", *ctx.Properties.Subnetworks[1].Description)
	assert.Equal(t, []string{KeyName, KeyCIDR}, ctx.Properties.Subnetworks[2].Missing())
}

func TestFromMaps_NilMaps(t *testing.T) {
	ctx, err := FromMaps(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ctx.Env.Name)
	assert.Nil(t, ctx.Properties.Subnetworks)
}

func TestFromMaps_WrongShape(t *testing.T) {
	_, err := FromMaps(nil, map[string]any{"subnetworks": "not-a-list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode properties")
}

func TestFindContextFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultContextFilename), []byte(sampleContext), 0600))

	t.Chdir(nested)

	path, err := FindContextFile()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(root, DefaultContextFilename))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"slate-seo/pkg/domain"
)

func TestValidateReportsDangling(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, validate(&out))

	assert.Contains(t, out.String(), "Catalog OK: 526 pages")
	assert.Contains(t, out.String(), "press-release -> [company-announcement]")
	assert.Contains(t, out.String(), "pitch-deck -> [executive-summary]")
}

func TestExportJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, export(&out, "json"))

	var pages []domain.Page
	require.NoError(t, json.Unmarshal(out.Bytes(), &pages))
	require.Len(t, pages, 526)
	assert.Equal(t, "linkedin-post", pages[0].Slug)
}

func TestExportYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, export(&out, "yaml"))

	var pages []domain.Page
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &pages))
	require.Len(t, pages, 526)
	assert.Equal(t, "nda", pages[len(pages)-1].Slug)
}

func TestExportUnknownFormat(t *testing.T) {
	err := export(&bytes.Buffer{}, "csv")
	assert.Error(t, err)
}

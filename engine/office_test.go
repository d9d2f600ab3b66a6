package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const corePropsFixture = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
    xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Quarterly Report</dc:title>
  <dc:subject>Finance</dc:subject>
  <dc:creator>alice</dc:creator>
  <cp:keywords>q3,revenue</cp:keywords>
</cp:coreProperties>`

func TestReadCoreProperties(t *testing.T) {
	data := buildZip(t, map[string]string{
		"word/document.xml": "<w:document/>",
		"docProps/core.xml": corePropsFixture,
	})

	md := Metadata{}
	readCoreProperties(data, md)
	assert.Equal(t, "Quarterly Report", md.Get("Title"))
	assert.Equal(t, "Finance", md.Get("Subject"))
	assert.Equal(t, "alice", md.Get("Creator"))
	assert.Equal(t, "q3,revenue", md.Get("Keywords"))
}

func TestReadCorePropertiesSkipsEmptyFields(t *testing.T) {
	data := buildZip(t, map[string]string{
		"docProps/core.xml": `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>Only Title</dc:title></cp:coreProperties>`,
	})

	md := Metadata{}
	readCoreProperties(data, md)
	assert.Equal(t, "Only Title", md.Get("Title"))
	_, hasCreator := md["Creator"]
	assert.False(t, hasCreator)
}

func TestReadCorePropertiesTolerant(t *testing.T) {
	md := Metadata{}
	readCoreProperties([]byte("not a zip"), md)
	assert.Empty(t, md)

	data := buildZip(t, map[string]string{"docProps/core.xml": "<broken"})
	readCoreProperties(data, md)
	assert.Empty(t, md)
}

func TestZipContains(t *testing.T) {
	data := buildZip(t, map[string]string{
		"word/document.xml":   "<w:document/>",
		"word/vbaProject.bin": "\x01\x02",
	})
	assert.True(t, zipContains(data, "word/vbaProject.bin"))
	assert.False(t, zipContains(data, "word/styles.xml"))
	assert.False(t, zipContains([]byte("not a zip"), "anything"))
}

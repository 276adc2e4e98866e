package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = `{
	"types": {
		"Autodesk.Revit.DB.Wall": {
			"name": "Wall",
			"kind": "class",
			"namespace": "Autodesk.Revit.DB",
			"description": "Represents a wall.",
			"signature": "public class Wall : HostObject",
			"file": "T_Autodesk_Revit_DB_Wall.htm",
			"members": {
				"properties": [{"name": "Flipped", "desc": "Whether the wall is flipped."}],
				"methods": [{"name": "Create", "desc": "Creates a new wall."}],
				"events": []
			}
		},
		"Autodesk.Revit.DB.Floor": {
			"name": "Floor",
			"kind": "class",
			"namespace": "Autodesk.Revit.DB",
			"description": "Represents a floor.",
			"file": "T_Autodesk_Revit_DB_Floor.htm",
			"members": {"properties": [], "methods": [], "events": []}
		},
		"Autodesk.Revit.DB.Architecture.Room": {
			"name": "Room",
			"kind": "class",
			"namespace": "Autodesk.Revit.DB.Architecture",
			"description": "Represents a room.",
			"file": "T_Autodesk_Revit_DB_Architecture_Room.htm",
			"members": {"properties": [], "methods": [], "events": []}
		}
	},
	"namespaces": {
		"Autodesk.Revit.DB": {"description": "Database classes.", "types": ["Wall", "Floor"]},
		"Autodesk.Revit.DB.Architecture": {"description": "Architecture classes.", "types": ["Room"]}
	}
}`

const testPages = `{
	"T:Autodesk.Revit.DB.Wall": {"title": "Wall Class", "desc": "Represents a wall.", "ns": "Autodesk.Revit.DB", "sig": "public class Wall", "inherit": ["Object", "Element", "Wall"], "members": {"props": [{"n": "Flipped", "d": "Flip state."}]}},
	"P:Autodesk.Revit.DB.Wall.Flipped": {"title": "Flipped Property", "desc": "Flip state.", "ns": "Autodesk.Revit.DB", "sig": "public bool Flipped { get; }", "members": {}},
	"M:Autodesk.Revit.DB.Wall.Create(System.Int32)": {"title": "Create Method (Int32)", "desc": "", "ns": "Autodesk.Revit.DB", "sig": "", "members": {}}
}`

// writeCatalog writes a catalog directory with the given files.
func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func openCatalog(t *testing.T, files map[string]string) *fs.Catalog {
	t.Helper()

	c := fs.NewCatalog(writeCatalog(t, files))
	require.NoError(t, c.Open())
	return c
}

func TestCatalog_Open(t *testing.T) {
	t.Parallel()

	t.Run("loads types and namespaces in file order", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{"api_index.json": testIndex})

		idx := c.Index()
		require.Len(t, idx.Types, 3)
		assert.Equal(t, "Autodesk.Revit.DB.Wall", idx.Types[0].FQN)
		assert.Equal(t, "Autodesk.Revit.DB.Floor", idx.Types[1].FQN)
		assert.Equal(t, "Autodesk.Revit.DB.Architecture.Room", idx.Types[2].FQN)

		require.Len(t, idx.Namespaces, 2)
		assert.Equal(t, "Autodesk.Revit.DB", idx.Namespaces[0].Name)
		assert.Equal(t, []string{"Wall", "Floor"}, idx.Namespaces[0].Types)

		wall, ok := idx.Type("Autodesk.Revit.DB.Wall")
		require.True(t, ok)
		assert.Equal(t, "class", wall.Kind)
		assert.Equal(t, "public class Wall : HostObject", wall.Signature)
		require.Len(t, wall.Members.Properties, 1)
		assert.Equal(t, "Flipped", wall.Members.Properties[0].Name)
		assert.Equal(t, "Whether the wall is flipped.", wall.Members.Properties[0].Description)
	})

	t.Run("returns EUNAVAILABLE when the index is missing", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCatalog(t.TempDir())

		err := c.Open()

		require.Error(t, err)
		assert.Equal(t, apidoc.EUNAVAILABLE, apidoc.ErrorCode(err))
	})

	t.Run("returns EMALFORMED when the types key is missing", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCatalog(writeCatalog(t, map[string]string{"api_index.json": `{"namespaces": {}}`}))

		err := c.Open()

		require.Error(t, err)
		assert.Equal(t, apidoc.EMALFORMED, apidoc.ErrorCode(err))
		assert.Contains(t, apidoc.ErrorMessage(err), "types")
	})

	t.Run("returns EMALFORMED when a type has no name", func(t *testing.T) {
		t.Parallel()

		index := `{"types": {"A.B": {"kind": "class", "namespace": "A", "members": {}}}, "namespaces": {}}`
		c := fs.NewCatalog(writeCatalog(t, map[string]string{"api_index.json": index}))

		err := c.Open()

		require.Error(t, err)
		assert.Equal(t, apidoc.EMALFORMED, apidoc.ErrorCode(err))
	})

	t.Run("returns EMALFORMED for invalid JSON", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCatalog(writeCatalog(t, map[string]string{"api_index.json": `{"types": [`}))

		err := c.Open()

		require.Error(t, err)
		assert.Equal(t, apidoc.EMALFORMED, apidoc.ErrorCode(err))
	})

	t.Run("treats a missing lookup table as empty", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{"api_index.json": testIndex})

		assert.Empty(t, c.Lookup())
	})

	t.Run("loads the lookup table", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json":     testIndex,
			"pages/_lookup.json": `{"T:Autodesk.Revit.DB.Wall": "Autodesk.Revit.DB"}`,
		})

		ns, ok := c.Lookup().Namespace("T:Autodesk.Revit.DB.Wall")
		assert.True(t, ok)
		assert.Equal(t, "Autodesk.Revit.DB", ns)
	})

	t.Run("fingerprint changes with index content", func(t *testing.T) {
		t.Parallel()

		a := openCatalog(t, map[string]string{"api_index.json": testIndex})
		b := openCatalog(t, map[string]string{"api_index.json": `{"types": {}, "namespaces": {}}`})

		assert.Len(t, a.Fingerprint(), 16)
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}

func TestCatalog_Pages(t *testing.T) {
	t.Parallel()

	t.Run("loads pages in file order", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json":               testIndex,
			"pages/Autodesk.Revit.DB.json": testPages,
		})

		set, err := c.Pages(context.Background(), "Autodesk.Revit.DB")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"T:Autodesk.Revit.DB.Wall",
			"P:Autodesk.Revit.DB.Wall.Flipped",
			"M:Autodesk.Revit.DB.Wall.Create(System.Int32)",
		}, set.Keys())

		page, ok := set.Get("T:Autodesk.Revit.DB.Wall")
		require.True(t, ok)
		assert.Equal(t, "Wall Class", page.Title)
		assert.Equal(t, []string{"Object", "Element", "Wall"}, page.Inherit)
		require.Len(t, page.Members.Props, 1)
		assert.Equal(t, "Flipped", page.Members.Props[0].Name)
	})

	t.Run("returns an empty set for a namespace without a page file", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{"api_index.json": testIndex})

		set, err := c.Pages(context.Background(), "Nope.Missing")

		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("normalizes namespace separators in file names", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json": testIndex,
			"pages/A.B.json": `{"T:A.B.C": {"title": "C", "members": {}}}`,
		})

		set, err := c.Pages(context.Background(), "A::B")

		require.NoError(t, err)
		assert.True(t, set.Has("T:A.B.C"))
	})

	t.Run("returns EMALFORMED for a corrupt page file", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json": testIndex,
			"pages/A.json":   `{"T:A.B": `,
		})

		_, err := c.Pages(context.Background(), "A")

		require.Error(t, err)
		assert.Equal(t, apidoc.EMALFORMED, apidoc.ErrorCode(err))
	})

	t.Run("caches pages for the lifetime of the catalog", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalog(t, map[string]string{
			"api_index.json":               testIndex,
			"pages/Autodesk.Revit.DB.json": testPages,
		})
		c := fs.NewCatalog(dir)
		require.NoError(t, c.Open())

		first, err := c.Pages(context.Background(), "Autodesk.Revit.DB")
		require.NoError(t, err)

		// Removing the file must not affect an already loaded namespace.
		require.NoError(t, os.Remove(filepath.Join(dir, "pages", "Autodesk.Revit.DB.json")))

		second, err := c.Pages(context.Background(), "Autodesk.Revit.DB")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("concurrent first loads share one set", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json":               testIndex,
			"pages/Autodesk.Revit.DB.json": testPages,
		})

		const n = 16
		sets := make([]*apidoc.PageSet, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				set, err := c.Pages(context.Background(), "Autodesk.Revit.DB")
				assert.NoError(t, err)
				sets[i] = set
			}()
		}
		wg.Wait()

		for _, set := range sets[1:] {
			assert.Same(t, sets[0], set)
		}
	})

	t.Run("does not read page files outside the pages directory", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{
			"api_index.json": testIndex,
			"secret.json":    `{"T:Secret.Key": {"title": "Key", "members": {}}}`,
			"pages/A.json":   `{"T:A.B": {"title": "B", "members": {}}}`,
		})

		for _, ns := range []string{"../secret", "A/../../secret", `..\secret`, "/etc/passwd", ".."} {
			set, err := c.Pages(context.Background(), ns)

			require.NoError(t, err, ns)
			assert.Equal(t, 0, set.Len(), ns)
			assert.False(t, set.Has("T:Secret.Key"), ns)
		}
	})

	t.Run("loads a page file created after a miss", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalog(t, map[string]string{"api_index.json": testIndex})
		c := fs.NewCatalog(dir)
		require.NoError(t, c.Open())

		missing, err := c.Pages(context.Background(), "Late")
		require.NoError(t, err)
		require.Equal(t, 0, missing.Len())

		require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "Late.json"),
			[]byte(`{"T:Late.Type": {"title": "Type", "members": {}}}`), 0644))

		set, err := c.Pages(context.Background(), "Late")

		require.NoError(t, err)
		assert.True(t, set.Has("T:Late.Type"))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		c := openCatalog(t, map[string]string{"api_index.json": testIndex})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Pages(ctx, "Autodesk.Revit.DB")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

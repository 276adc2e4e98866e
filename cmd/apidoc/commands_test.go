package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/apidoc"
	main "github.com/fwojciec/apidoc/cmd/apidoc"
	"github.com/fwojciec/apidoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallType = &apidoc.TypeRecord{
	FQN:         "Autodesk.Revit.DB.Wall",
	Name:        "Wall",
	Kind:        "class",
	Namespace:   "Autodesk.Revit.DB",
	Description: "Represents a wall in Autodesk Revit, which is a vertical host element.",
	Signature:   "public class Wall : HostObject",
	File:        "T_Autodesk_Revit_DB_Wall.htm",
	Members: apidoc.Members{
		Properties: []apidoc.Member{{Name: "Flipped", Description: "Whether the wall is flipped."}},
		Methods:    []apidoc.Member{{Name: "Create", Description: "Creates a new wall."}},
	},
}

func newDeps(search apidoc.SearchService, resolver apidoc.Resolver) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Search:   search,
		Resolver: resolver,
	}, stdout, stderr
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders a ranked table with truncated descriptions", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchTypesFn: func(_ context.Context, keyword string) ([]apidoc.TypeMatch, error) {
				assert.Equal(t, "vertical host", keyword)
				return []apidoc.TypeMatch{{Score: 50, Type: wallType}}, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.SearchCmd{Keyword: []string{"vertical", "host"}}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `## Search results: "vertical host" (1)`)
		assert.Contains(t, output, "| **Wall** | class | Autodesk.Revit.DB | Represents a wall in Autodesk Revit, which is a vertical ... |")
	})

	t.Run("reports no results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchTypesFn: func(_ context.Context, _ string) ([]apidoc.TypeMatch, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.SearchCmd{Keyword: []string{"zzz"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No types found matching "zzz".`)
	})

	t.Run("reports service errors", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchTypesFn: func(_ context.Context, _ string) ([]apidoc.TypeMatch, error) {
				return nil, errors.New("boom")
			},
		}
		deps, _, stderr := newDeps(search, nil)

		err := (&main.SearchCmd{Keyword: []string{"wall"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}

func TestNamespaceCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists namespace types", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			FindNamespaceFn: func(_ context.Context, query string) (*apidoc.NamespaceListing, error) {
				return &apidoc.NamespaceListing{
					Namespace: &apidoc.NamespaceRecord{Name: "Autodesk.Revit.DB", Description: "Database classes.", Types: []string{"Wall"}},
					Types:     []*apidoc.TypeRecord{wallType},
				}, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.NamespaceCmd{Name: []string{"DB"}}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Autodesk.Revit.DB\n> Database classes.")
		assert.Contains(t, output, "**Types**: 1")
		assert.Contains(t, output, "| **Wall** | class |")
	})

	t.Run("reports unknown namespace", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			FindNamespaceFn: func(_ context.Context, _ string) (*apidoc.NamespaceListing, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.NamespaceCmd{Name: []string{"Nope"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Namespace "Nope" not found.`)
	})
}

func TestClassCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders type overview", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			FindTypeFn: func(_ context.Context, name string) (*apidoc.TypeRecord, error) {
				assert.Equal(t, "wall", name)
				return wallType, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.ClassCmd{Name: []string{"wall"}}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Autodesk.Revit.DB.Wall")
		assert.Contains(t, output, "- **Signature**: `public class Wall : HostObject`")
		assert.Contains(t, output, "### Properties (1)")
		assert.Contains(t, output, "| `Flipped` | Whether the wall is flipped. |")
		assert.Contains(t, output, "### Methods (1)")
		assert.NotContains(t, output, "### Events")
		assert.Contains(t, output, `apidoc page --type "Autodesk.Revit.DB.Wall"`)
	})

	t.Run("suggests search for unknown type", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			FindTypeFn: func(_ context.Context, _ string) (*apidoc.TypeRecord, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.ClassCmd{Name: []string{"Wal"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Try: apidoc search "Wal"`)
	})
}

func TestMemberCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders member hits", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchMembersFn: func(_ context.Context, _ string) (*apidoc.MemberSearch, error) {
				return &apidoc.MemberSearch{Hits: []apidoc.MemberHit{{
					Type:     wallType,
					Category: apidoc.CategoryProperties,
					Member:   wallType.Members.Properties[0],
				}}}, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.MemberCmd{Name: []string{"flip"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "| `Flipped` | properties | Wall | Whether the wall is flipped. |")
	})

	t.Run("redirects to type candidates", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchMembersFn: func(_ context.Context, _ string) (*apidoc.MemberSearch, error) {
				return &apidoc.MemberSearch{TypeCandidates: []apidoc.TypeMatch{{Score: 100, Type: wallType}}}, nil
			},
		}
		deps, stdout, _ := newDeps(search, nil)

		err := (&main.MemberCmd{Name: []string{"Wall"}}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `No members found matching "Wall".`)
		assert.Contains(t, output, `apidoc class "Autodesk.Revit.DB.Wall"`)
		assert.Contains(t, output, `apidoc search "Wall"`)
	})
}

func TestNamespacesCmd_Run(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		ListNamespacesFn: func(_ context.Context) ([]apidoc.NamespaceSummary, error) {
			return []apidoc.NamespaceSummary{
				{Name: "Autodesk.Revit.DB", Description: "Database classes.", TypeCount: 2},
				{Name: "Autodesk.Revit.UI", TypeCount: 0},
			}, nil
		},
	}
	deps, stdout, _ := newDeps(search, nil)

	err := (&main.NamespacesCmd{}).Run(deps)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "## All namespaces (2)")
	assert.Contains(t, output, "| **Autodesk.Revit.DB** | 2 | Database classes. |")
	assert.Contains(t, output, "| **Autodesk.Revit.UI** | 0 |  |")
}

func TestPageCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders resolved page with overloads", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, rawID string) (*apidoc.Resolution, error) {
				return &apidoc.Resolution{
					ID:        "M:A.B.Foo(System.Int32)",
					Namespace: "A",
					Related:   []string{"M:A.B.Foo(System.Int32)", "M:A.B.Foo(System.String)"},
					Advisory:  "Overload detected.",
					Strategy:  apidoc.StrategyOverload,
				}, nil
			},
			PageFn: func(_ context.Context, namespace, id string) (*apidoc.PageRecord, error) {
				assert.Equal(t, "A", namespace)
				assert.Equal(t, "M:A.B.Foo(System.Int32)", id)
				return &apidoc.PageRecord{Title: "Foo Method (Int32)"}, nil
			},
		}
		deps, stdout, _ := newDeps(nil, resolver)

		err := (&main.PageCmd{ID: "Overload:A.B.Foo"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Overload detected.\n\n## Available overloads")
		assert.Contains(t, output, "- `M:A.B.Foo(System.String)`")
		assert.Contains(t, output, "# Foo Method (Int32)")
	})

	t.Run("resolves type names first", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveTypeFn: func(_ context.Context, name string) (string, error) {
				assert.Equal(t, "Wall", name)
				return "T:A.Wall", nil
			},
			ResolveFn: func(_ context.Context, rawID string) (*apidoc.Resolution, error) {
				assert.Equal(t, "T:A.Wall", rawID)
				return &apidoc.Resolution{ID: rawID, Namespace: "A"}, nil
			},
			PageFn: func(_ context.Context, _, _ string) (*apidoc.PageRecord, error) {
				return &apidoc.PageRecord{Title: "Wall Class"}, nil
			},
		}
		deps, stdout, _ := newDeps(nil, resolver)

		err := (&main.PageCmd{Type: "Wall"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Wall Class")
		assert.NotContains(t, stdout.String(), "Available overloads")
	})

	t.Run("unknown type name", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveTypeFn: func(_ context.Context, name string) (string, error) {
				return "", apidoc.Errorf(apidoc.ENOTFOUND, "type %q not found", name)
			},
		}
		deps, _, stderr := newDeps(nil, resolver)

		err := (&main.PageCmd{Type: "Nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, apidoc.ENOTFOUND, apidoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `type "Nope" not found`)
	})

	t.Run("lists candidates on a miss", func(t *testing.T) {
		t.Parallel()

		related := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9"}
		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, _ string) (*apidoc.Resolution, error) {
				return &apidoc.Resolution{Namespace: "A", Related: related}, nil
			},
		}
		deps, stdout, _ := newDeps(nil, resolver)

		err := (&main.PageCmd{ID: " A.Wal "}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, apidoc.ENOTFOUND, apidoc.ErrorCode(err))
		output := stdout.String()
		assert.Contains(t, output, `Identifier "T:A.Wal" not found.`)
		assert.Contains(t, output, apidoc.PrefixLegend)
		assert.Contains(t, output, "  - c8\n")
		assert.NotContains(t, output, "c9")
	})
}

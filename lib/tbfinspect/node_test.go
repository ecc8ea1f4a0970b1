package tbfinspect

import (
	"testing"

	"github.com/electrodiux/tbf/lib/tbf"
)

func TestDumpScalarsAndNesting(t *testing.T) {
	w := tbf.NewWriter(tbf.NameMode)
	root := w.RootObject()
	root.FieldInt32(tbf.MustTag("count"), 7)
	child := root.FieldObject(tbf.MustTag("inner"))
	child.FieldString(tbf.MustTag("name"), "leaf")
	child.Finish()
	root.Finish()
	w.Finish()

	reader := tbf.NewReader(w.Bytes(), tbf.NameMode)
	nodes := Dump(reader.RootObject(), nil)

	if len(nodes) != 2 {
		t.Fatalf("Dump() returned %d nodes, want 2", len(nodes))
	}
	if nodes[0].Tag != "count" || nodes[0].Value != int32(7) {
		t.Errorf("nodes[0] = %+v, want count=7", nodes[0])
	}
	if nodes[1].Tag != "inner" || len(nodes[1].Children) != 1 {
		t.Fatalf("nodes[1] = %+v, want one child", nodes[1])
	}
	if nodes[1].Children[0].Tag != "name" || nodes[1].Children[0].Value != "leaf" {
		t.Errorf("nested field = %+v, want name=leaf", nodes[1].Children[0])
	}
}

func TestTagLabelPrefersName(t *testing.T) {
	tag := tbf.MustTag("explicit")
	if got := TagLabel(tag, nil); got != "explicit" {
		t.Errorf("TagLabel() = %q, want %q", got, "explicit")
	}
}

func TestTagLabelFallsBackToIDString(t *testing.T) {
	tag := tbf.IDOnlyTag(9)
	if got := TagLabel(tag, nil); got != "#9" {
		t.Errorf("TagLabel() = %q, want %q", got, "#9")
	}
}

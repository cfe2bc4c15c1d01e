package scene

import (
	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/staff"
)

type Op uint8

const (
	OpFill Op = iota
	OpLine
	OpGlyph
)

// Role names the staff element a command paints.
type Role uint8

const (
	RoleBackground Role = iota
	RoleStaffLine
	RoleClef
	RoleNoteHead
	RoleLedgerLine
	RoleAccidental
)

var roleNames = [...]string{"background", "staff line", "clef", "note head", "ledger line", "accidental"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Command is one draw operation. Fill uses Rect, Line uses Segment and
// Width, Glyph uses Glyph and Rect.
type Command struct {
	Op      Op
	Role    Role
	Rect    staff.Rect
	Segment staff.Segment
	Width   float64
	Glyph   *glyph.Handle
}

// Paint turns a layout into draw commands in painting order: background,
// staff lines, clef, note head, ledger lines, accidental.
func Paint(l Layout) []Command {
	cmds := make([]Command, 0, 2+len(l.Lines)+4)
	cmds = append(cmds, Command{Op: OpFill, Role: RoleBackground, Rect: l.Container})
	for _, seg := range l.Lines {
		cmds = append(cmds, Command{Op: OpLine, Role: RoleStaffLine, Segment: seg, Width: l.Stroke})
	}
	cmds = append(cmds, glyphCommand(RoleClef, l.Clef))

	n := l.Note
	if n == nil {
		return cmds
	}
	cmds = append(cmds, glyphCommand(RoleNoteHead, n.Head))
	for _, seg := range n.Ledgers {
		cmds = append(cmds, Command{Op: OpLine, Role: RoleLedgerLine, Segment: seg, Width: l.Stroke})
	}
	if n.Accidental != nil {
		cmds = append(cmds, glyphCommand(RoleAccidental, *n.Accidental))
	}
	return cmds
}

func glyphCommand(r Role, p Placed) Command {
	return Command{Op: OpGlyph, Role: r, Rect: p.Rect, Glyph: p.Glyph}
}

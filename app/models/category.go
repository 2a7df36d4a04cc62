package models

import (
	"sort"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Description *string    `gorm:"size:500" json:"description,omitempty" validate:"omitempty,max=500"`
	ParentID    *uint      `gorm:"index" json:"parent_id,omitempty"`
	Parent      *Category  `gorm:"foreignKey:ParentID" json:"-" validate:"-"`
	Children    []Category `gorm:"foreignKey:ParentID" json:"children,omitempty" validate:"-"`
	ImageURL    *string    `gorm:"size:500" json:"image_url,omitempty" validate:"omitempty,max=500"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	SortOrder   int        `gorm:"not null;default:0" json:"sort_order"`
	Products    []Product  `gorm:"foreignKey:CategoryID" json:"-" validate:"-"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	return validation.Struct(c)
}

// CategoryTree is a lookup index over category parent links. It holds ids only;
// the rows themselves stay with the caller.
type CategoryTree struct {
	parent   map[uint]*uint
	children map[uint][]uint
	roots    []uint
}

// NewCategoryTree indexes the given rows. Children are ordered by sort order,
// then id.
func NewCategoryTree(categories []Category) *CategoryTree {
	t := &CategoryTree{
		parent:   make(map[uint]*uint, len(categories)),
		children: make(map[uint][]uint),
	}

	order := make(map[uint]int, len(categories))
	for _, c := range categories {
		t.parent[c.ID] = c.ParentID
		order[c.ID] = c.SortOrder
	}
	for _, c := range categories {
		if c.ParentID == nil {
			t.roots = append(t.roots, c.ID)
			continue
		}
		t.children[*c.ParentID] = append(t.children[*c.ParentID], c.ID)
	}

	less := func(ids []uint) func(i, j int) bool {
		return func(i, j int) bool {
			if order[ids[i]] != order[ids[j]] {
				return order[ids[i]] < order[ids[j]]
			}
			return ids[i] < ids[j]
		}
	}
	sort.Slice(t.roots, less(t.roots))
	for id, ids := range t.children {
		sort.Slice(ids, less(ids))
		t.children[id] = ids
	}
	return t
}

func (t *CategoryTree) Contains(id uint) bool {
	_, ok := t.parent[id]
	return ok
}

func (t *CategoryTree) Roots() []uint {
	return append([]uint(nil), t.roots...)
}

func (t *CategoryTree) Children(id uint) []uint {
	return append([]uint(nil), t.children[id]...)
}

func (t *CategoryTree) Parent(id uint) (uint, bool) {
	p := t.parent[id]
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Descendants returns every category below id, breadth first.
func (t *CategoryTree) Descendants(id uint) []uint {
	var out []uint
	queue := t.Children(id)
	seen := map[uint]bool{id: true}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
		queue = append(queue, t.children[next]...)
	}
	return out
}

// WouldCycle reports whether making newParent the parent of id would put id
// among its own ancestors.
func (t *CategoryTree) WouldCycle(id uint, newParent *uint) bool {
	if newParent == nil {
		return false
	}
	seen := make(map[uint]bool)
	for cur := newParent; cur != nil; cur = t.parent[*cur] {
		if *cur == id || seen[*cur] {
			return true
		}
		seen[*cur] = true
	}
	return false
}

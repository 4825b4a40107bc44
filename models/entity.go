package models

// Entity is implemented by every persisted model and exposes the
// server-assigned primary key. The generic resource handler relies on it to
// reload a record after insert.
type Entity interface {
	GetID() uint
}

func (p Project) GetID() uint { return p.ID }

func (e Experience) GetID() uint { return e.ID }

func (e Education) GetID() uint { return e.ID }

func (c SkillCategory) GetID() uint { return c.ID }

func (s Skill) GetID() uint { return s.ID }

func (c ContactInfo) GetID() uint { return c.ID }

func (m ChatMessage) GetID() uint { return m.ID }

func (m ContactMessage) GetID() uint { return m.ID }

package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/motion"
)

// ProjectGrid renders one card per project in the given order.
func ProjectGrid(d motion.Driver, projects []*catalog.Project, a Actions) g.Node {
	return Div(
		Class("grid"),
		ID("projects"),
		g.Group(g.Map(projects, func(p *catalog.Project) g.Node {
			return ProjectCard(d, p, a)
		})),
	)
}

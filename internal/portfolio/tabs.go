package portfolio

// TabController tracks the category whose list is currently browsable.
// The zero value starts on projects.
type TabController struct {
	active Category
}

// NewTabController returns a controller on the projects tab.
func NewTabController() *TabController {
	return &TabController{active: CategoryProject}
}

// Activate switches the browsable list. Callers draw c from the fixed tab set.
func (t *TabController) Activate(c Category) {
	t.active = c
}

// Current returns the active category.
func (t *TabController) Current() Category {
	return t.active
}

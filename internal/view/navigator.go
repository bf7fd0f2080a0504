package view

// RootPath is the route the Back control leads to.
const RootPath = "/"

// Navigator performs client-side route changes on behalf of a view.
type Navigator interface {
	Navigate(path string)
}

// Back asks nav to go to the root route. Views keep no navigation state.
func Back(nav Navigator) {
	if nav == nil {
		return
	}
	nav.Navigate(RootPath)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f.
func (f NavigatorFunc) Navigate(path string) { f(path) }

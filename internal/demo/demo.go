// Package demo is a small routed application used by the vroute CLI and
// in tests: a navigation bar over Home, About, Profile and User views,
// with Profile nesting two more levels of Switch.
package demo

import (
	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/match"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// App returns the application content to place under a router.
func App() *vdom.VNode {
	return vdom.Div(vdom.Class("app"),
		Nav(),
		vdom.Main(
			router.Switch(
				router.Route("", Home),
				router.Route("about", About),
				router.Route("profile", Profile),
				router.Route("users/:id", User),
			),
		),
	)
}

// Table describes App's routes for tooling.
func Table() []match.TableEntry {
	return []match.TableEntry{
		{Name: "Home", Path: ""},
		{Name: "About", Path: "about"},
		{Name: "Profile", Path: "profile", Children: []match.TableEntry{
			{Name: "ProfileIndex", Path: ""},
			{Name: "ProfileSettings", Path: "settings", Children: []match.TableEntry{
				{Name: "ProfileSettingsIndex", Path: ""},
				{Name: "ProfileSettingsDelete", Path: "delete"},
			}},
		}},
		{Name: "User", Path: "users/:id"},
	}
}

// Title names the page at path after its innermost matched view.
func Title(path string) string {
	steps, err := match.Resolve(Table(), path)
	if err != nil || len(steps) == 0 {
		return "Not found"
	}
	return steps[len(steps)-1].Name
}

// Nav renders the navigation links.
func Nav() *vdom.VNode {
	return vdom.Nav(
		vdom.Ul(
			vdom.Li(router.NavLink("/", "Home")),
			vdom.Li(router.NavLink("/about", "About")),
			vdom.Li(router.ActiveLink("/profile", "active", false, "Profile")),
		),
	)
}

func view(name string, children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Data("view", name), name}, children...)...)
}

func Home() *vdom.VNode {
	return view("Home")
}

func About() *vdom.VNode {
	return view("About")
}

func Profile() *vdom.VNode {
	return view("Profile",
		vdom.Ul(
			vdom.Li(router.NavLink("/profile", "Overview")),
			vdom.Li(router.ActiveLink("/profile/settings", "active", false, "Settings")),
		),
		router.Switch(
			router.Route("", ProfileIndex),
			router.Route("settings", ProfileSettings),
		),
	)
}

func ProfileIndex() *vdom.VNode {
	return view("ProfileIndex")
}

func ProfileSettings() *vdom.VNode {
	return view("ProfileSettings",
		router.Link("/profile/settings/delete", vdom.Class("danger"), "Delete account"),
		router.Switch(
			router.Route("", ProfileSettingsIndex),
			router.Route("delete", ProfileSettingsDelete),
		),
	)
}

func ProfileSettingsIndex() *vdom.VNode {
	return view("ProfileSettingsIndex")
}

// ProfileSettingsDelete offers a cancel button that navigates back to the
// settings page.
func ProfileSettingsDelete(owner *vango.Owner) *vdom.VNode {
	r := router.UseRouter(owner)
	return view("ProfileSettingsDelete",
		vdom.Button(vdom.Class("cancel"), vdom.OnClick(func() {
			if r != nil {
				r.Navigate("/profile/settings", history.WithReplace())
			}
		}), "Cancel"),
	)
}

// User shows the id parameter and the tab query parameter.
func User(owner *vango.Owner) *vdom.VNode {
	id := router.UseParams(owner)["id"]
	tab := router.UseQuery(owner)["tab"]
	if tab == "" {
		tab = "posts"
	}
	return view("User", vdom.H2("User ", id), vdom.P("Tab: ", tab))
}

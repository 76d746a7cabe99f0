// Package auth is the authentication flow gating the explorer: a state
// machine over the single current-user variable with bootstrap, login,
// register and logout transitions.
//
// The flow composes the session manager (cached credential lifecycle) with
// the user service client (remote validation). It owns no UI and no
// navigation: transitions return a Redirect hint and structured errors
// (validator.ValidationErrors for local failures, *userapi.APIError for
// service rejections) for the view layer to render. Failed transitions
// never touch session state.
//
// # Usage
//
//	flow := auth.NewFlow(sessions, client)
//
//	switch flow.Bootstrap(ctx) {
//	case auth.RedirectHome:  // cached session revalidated
//	case auth.RedirectLogin: // sign in required
//	}
//
//	_, err := flow.Login(ctx, auth.LoginInput{Email: email, Password: pass})
package auth

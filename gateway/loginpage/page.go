// Package loginpage renders the html form used to sign in.
package loginpage

import (
	"bytes"
	"html/template"
)

const (
	formAction = "/auth/login"
)

var (
	page = template.Must(template.New("login").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Login</title>
<style>
body {
  font-family: "Inter","Segoe UI",system-ui,-apple-system,sans-serif;
  display: flex; justify-content: center; align-items: center;
  min-height: 100vh; background: radial-gradient(circle at 20% 20%, #1f3b73 0, #0f172a 35%, #0b1020 70%);
  color: #e5e7eb; margin: 0;
}
.card {
  width: 360px; padding: 28px; border-radius: 16px;
  background: rgba(17,24,39,0.85); box-shadow: 0 15px 40px rgba(0,0,0,0.35);
  border: 1px solid rgba(255,255,255,0.06);
}
.title { font-size: 22px; font-weight: 700; margin: 0 0 6px; }
.subtitle { font-size: 13px; color: #9ca3af; margin: 0 0 18px; }
label { display:block; font-size:13px; color:#cbd5e1; margin-bottom:6px; }
input {
  width: 100%; padding: 10px 12px; border-radius: 10px; border: 1px solid #334155;
  background: #0f172a; color: #e5e7eb; font-size: 14px; box-sizing: border-box;
}
input:focus { outline: 2px solid #38bdf8; border-color: #38bdf8; }
button {
  width:100%; margin-top: 14px; padding: 12px; border: none; border-radius: 10px;
  background: linear-gradient(135deg,#38bdf8,#6366f1); color:#0b1020; font-weight:700;
  font-size: 15px; cursor: pointer; transition: transform 0.05s ease;
}
button:hover { transform: translateY(-1px); }
.msg.error { background:#7f1d1d; color:#fecdd3; padding:10px 12px; border-radius:10px; margin-bottom:12px; font-size:13px; }
</style></head>
<body>
  <div class="card">
    <div class="title">Sign in</div>
    <p class="subtitle">Authenticate to open the remote desktop.</p>
    {{- if .Message}}
    <div class="msg error">{{.Message}}</div>
    {{- end}}
    <form method="POST" action="{{.Action}}">
      <label>Username</label>
      <input type="text" name="username" autofocus required>
      <div style="height:12px;"></div>
      <label>Password</label>
      <input type="password" name="password" required>
      <button type="submit">Continue</button>
    </form>
  </div>
</body></html>
`))
)

// Render returns the login page, message is shown as an error when
// not empty.
func Render(message string) []byte {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Message string
		Action  string
	}{message, formAction})
	if err != nil {
		// the template is static and the data is a plain string
		panic(err)
	}
	return buf.Bytes()
}

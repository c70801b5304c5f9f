package ui

import "html/template"

// FormPage feeds the Collecting stage template.
type FormPage struct {
	Name       string
	Phone      string
	NameError  string
	PhoneError string
}

// CredentialsPage feeds the Granted stage template. Name is expected to be
// sanitized before it gets here.
type CredentialsPage struct {
	SSID     string
	Password string
	Name     string
	Phone    string
}

var Form = template.Must(template.New("form").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>WiFi Access Portal</title>
    <style>
      body { font-family: system-ui, -apple-system, BlinkMacSystemFont, sans-serif; max-width: 420px; margin: 3rem auto; padding: 0 1rem; color: #334155; }
      label { display: block; margin-top: 1rem; font-weight: 600; }
      input { width: 100%; box-sizing: border-box; padding: 0.5rem; margin-top: 0.25rem; border: 1px solid #cbd5e1; border-radius: 4px; font-size: 1rem; }
      .error { color: #b91c1c; font-size: 0.875rem; margin-top: 0.25rem; }
      button { margin-top: 1.5rem; width: 100%; padding: 0.6rem; background: #334155; color: #fff; border: none; border-radius: 4px; font-size: 1rem; cursor: pointer; }
    </style>
  </head>
  <body>
    <h1>WiFi Access Portal</h1>
    <p>Enter your details to receive the network credentials.</p>

    <form method="post" action="/join">
      <label for="name">Full name</label>
      <input id="name" name="name" type="text" value="{{.Name}}" autocomplete="name">
      {{if .NameError}}<p class="error">{{.NameError}}</p>{{end}}

      <label for="phone">Phone number</label>
      <input id="phone" name="phone" type="tel" inputmode="numeric" value="{{.Phone}}"
             oninput="this.value = this.value.replace(/\D/g, '').slice(0, 10)">
      {{if .PhoneError}}<p class="error">{{.PhoneError}}</p>{{end}}

      <button type="submit">Get WiFi Access</button>
    </form>
  </body>
</html>
`))

var Credentials = template.Must(template.New("credentials").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>WiFi Access Granted</title>
    <style>
      body { font-family: system-ui, -apple-system, BlinkMacSystemFont, sans-serif; max-width: 420px; margin: 3rem auto; padding: 0 1rem; color: #334155; }
      dl { background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 4px; padding: 1rem; }
      dt { font-weight: 600; margin-top: 0.75rem; }
      dt:first-child { margin-top: 0; }
      dd { margin: 0.25rem 0 0; display: flex; align-items: center; gap: 0.5rem; }
      code { background: #e2e8f0; padding: 0.15rem 0.4rem; border-radius: 3px; }
      img { border: 1px solid #e2e8f0; padding: 0.5rem; background: #fff; }
      button { padding: 0.25rem 0.6rem; border: 1px solid #cbd5e1; background: #fff; border-radius: 4px; cursor: pointer; }
      form button { margin-top: 1.5rem; width: 100%; padding: 0.6rem; background: #334155; color: #fff; border: none; font-size: 1rem; }
      #toast { position: fixed; bottom: 1rem; left: 50%; transform: translateX(-50%); background: #334155; color: #fff; padding: 0.5rem 1rem; border-radius: 4px; display: none; cursor: pointer; }
    </style>
  </head>
  <body>
    <h1>You're connected, {{.Name}}</h1>
    <p>Registered phone: {{.Phone}}</p>

    <dl>
      <dt>Network</dt>
      <dd><code>{{.SSID}}</code> <button type="button" onclick="copyField('ssid')">Copy</button></dd>
      <dt>Password</dt>
      <dd><code>{{.Password}}</code> <button type="button" onclick="copyField('password')">Copy</button></dd>
    </dl>

    <section>
      <h2>Or scan to join</h2>
      <img src="/wifi/qr.png" width="200" height="200" alt="WiFi network QR"
           onerror="this.closest('section').hidden = true">
    </section>

    <form method="post" action="/reset">
      <button type="submit">Register someone else</button>
    </form>

    <div id="toast" onclick="this.style.display = 'none'"></div>

    <script>
      function toast(msg) {
        var el = document.getElementById('toast');
        el.textContent = msg;
        el.style.display = 'block';
        setTimeout(function () { el.style.display = 'none'; }, 3000);
      }
      function copyField(field) {
        fetch('/copy?field=' + field, { method: 'POST' })
          .then(function (resp) {
            if (!resp.ok) { throw new Error('copy rejected'); }
            return resp.text();
          })
          .then(function (text) { return navigator.clipboard.writeText(text); })
          .then(function () { toast('Copied to clipboard'); })
          .catch(function () { toast('Could not copy to clipboard'); });
      }
    </script>
  </body>
</html>
`))

package live

import (
	"bytes"
	"html/template"
)

// livePage embeds the current template verbatim and keeps it in sync over /ws.
var livePage = template.Must(template.New("live").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Live Page</title>
  </head>
  <body>
    <div id="live-container">{{.Content}}</div>
    <script>
      (function () {
        var viewer = {{.Viewer}};
        var container = document.getElementById("live-container");
        var scheme = location.protocol === "https:" ? "wss" : "ws";
        var socket = new WebSocket(scheme + "://" + location.host + "/ws?viewer=" + viewer);
        socket.onmessage = function (msg) {
          var ev = JSON.parse(msg.data);
          if (ev.event === "update-live-template") {
            container.innerHTML = ev.data;
          }
        };
      })();
    </script>
  </body>
</html>
`))

type pageData struct {
	Content template.HTML
	Viewer  int64
}

// renderLivePage renders the live document for viewer. content is trusted
// operator HTML and is not escaped.
func renderLivePage(content string, viewer int64) ([]byte, error) {
	var buf bytes.Buffer
	err := livePage.Execute(&buf, pageData{
		Content: template.HTML(content),
		Viewer:  viewer,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

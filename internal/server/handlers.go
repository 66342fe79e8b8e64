package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"sort"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/errors"
	"github.com/mayura-ui/mayura/internal/registry"
	"github.com/mayura-ui/mayura/internal/widgets"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

// clientScript wires data-* attributes to the websocket. Clicks and inputs
// on [data-event] elements become widget events; presses and key downs on
// the page become document events; fragments replace their [data-widget]
// container.
const clientScript = `
(function () {
  const status = document.getElementById('status');
  let ws;

  function widgetOf(el) {
    const host = el.closest('[data-widget]');
    return host ? host.dataset.widget : '';
  }

  function send(ev) {
    if (ws && ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev));
  }

  function swap(fragments) {
    for (const f of fragments || []) {
      const el = document.querySelector('[data-widget="' + f.widget + '"]');
      if (!el) continue;
      const focused = document.activeElement && document.activeElement.dataset.event === 'query';
      el.outerHTML = f.html;
      if (focused) {
        const input = document.querySelector('[data-widget="' + f.widget + '"] [data-event="query"]');
        if (input) { input.focus(); input.setSelectionRange(input.value.length, input.value.length); }
      }
    }
  }

  function connect() {
    const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    ws = new WebSocket(proto + '//' + location.host + '/ws');
    ws.onopen = function () { status.textContent = 'Live'; status.className = 'status connected'; };
    ws.onclose = function () {
      status.textContent = 'Disconnected'; status.className = 'status disconnected';
      setTimeout(connect, 2000);
    };
    ws.onmessage = function (msg) {
      const m = JSON.parse(msg.data);
      if (m.type === 'error') { console.warn(m.error.code, m.error.message); return; }
      swap(m.fragments);
    };
  }

  document.addEventListener('pointerdown', function (e) {
    send({ widget: 'document', type: 'pointerdown', target: widgetOf(e.target) });
  }, true);

  document.addEventListener('keydown', function (e) {
    if (widgetOf(e.target) === 'tabs' && e.target.dataset.event === 'select') {
      send({ widget: 'tabs', type: 'key', key: e.key });
      return;
    }
    send({ widget: 'document', type: 'keydown', key: e.key });
  });

  document.addEventListener('click', function (e) {
    const el = e.target.closest('[data-event]');
    if (!el || el.dataset.event === 'query') return;
    send({
      widget: widgetOf(el),
      type: el.dataset.event,
      value: el.dataset.value || '',
      index: el.dataset.index ? parseInt(el.dataset.index, 10) : 0,
      path: el.dataset.path || ''
    });
  });

  document.addEventListener('input', function (e) {
    const el = e.target;
    if (el.dataset.event !== 'query') return;
    send({ widget: widgetOf(el), type: 'query', value: el.value });
  });

  function hover(type) {
    return function (e) {
      const el = e.target.closest && e.target.closest('[data-hover]');
      if (!el || (e.relatedTarget && el.contains(e.relatedTarget))) return;
      const path = el.dataset.hover === 'trigger' ? '' : el.dataset.hover;
      send({ widget: widgetOf(el), type: type, path: path });
    };
  }
  document.addEventListener('mouseover', hover('enter'));
  document.addEventListener('mouseout', hover('leave'));

  connect();
})();
`

const pageStyle = `
.status { position: fixed; top: 1rem; right: 1rem; padding: .4rem 1rem; border-radius: .5rem; color: white; font-weight: 600; }
.status.connected { background: #00aeaf; }
.status.disconnected { background: #dc3545; }
`

func layout(title string, live bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Raw("<title>")
		w.Text(title)
		w.Raw(" · mayura</title>")
		w.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		w.Raw("<style>" + pageStyle + "</style></head>")
		w.Raw(`<body class="bg-gray-50 text-gray-900"><main class="container mx-auto max-w-5xl p-6 flex flex-col gap-6">`)
		w.Raw(`<header class="flex items-center justify-between border-b-2 border-[#00aeaf] pb-4">`)
		w.Raw(`<a href="/" class="text-2xl font-bold">mayura</a>`)
		if live {
			w.Raw(`<div id="status" class="status disconnected">Disconnected</div>`)
		}
		w.Raw("</header>")
		w.Component(ctx, body)
		w.Raw("</main>")
		if live {
			w.Raw("<script>" + clientScript + "</script>")
		}
		w.Raw("</body></html>")
		return w.Err()
	})
}

func indexPage(groups map[string][]*registry.ComponentInfo) templ.Component {
	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		for _, category := range categories {
			w.Raw(`<section class="flex flex-col gap-3"><h2 class="text-lg font-semibold capitalize">`)
			w.Text(category)
			w.Raw(`</h2><div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4">`)
			for _, c := range groups[category] {
				w.Raw(`<a class="block bg-white border border-gray-200 rounded-lg p-4 hover:shadow-lg transition-shadow"`)
				w.Attr("href", "/components/"+c.Name)
				w.Attr("data-component", c.Name)
				w.Raw(`><div class="font-semibold text-[#00aeaf]">`)
				w.Text(c.Name)
				w.Raw(`</div><p class="text-sm text-gray-600 mt-1">`)
				w.Text(c.Description)
				w.Raw("</p></a>")
			}
			w.Raw("</div></section>")
		}
		return w.Err()
	})
}

var propColumns = []table.Column{
	{Key: "name", Label: "Prop"},
	{Key: "type"},
	{Key: "default"},
	{Key: "description"},
}

func propsTable(info *registry.ComponentInfo) templ.Component {
	p := table.DefaultProps()
	p.Compact = true
	p.Columns = propColumns
	p.Data = make([]table.Row, len(info.Props))
	for i, prop := range info.Props {
		p.Data[i] = table.Row{
			"name":        prop.Name,
			"type":        prop.Type,
			"default":     prop.Default,
			"description": prop.Description,
		}
	}
	return table.Render(p, table.State{})
}

func componentPage(info *registry.ComponentInfo, live string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Raw(`<section class="flex flex-col gap-2"><h1 class="text-3xl font-bold">`)
		w.Text(info.Name)
		w.Raw(`</h1><p class="text-gray-600">`)
		w.Text(info.Description)
		w.Raw("</p></section>")

		w.Raw(`<section class="bg-white border border-gray-200 rounded-lg p-6 min-h-48">`)
		w.Raw(live)
		w.Raw("</section>")

		if len(info.Props) > 0 {
			w.Raw(`<section class="flex flex-col gap-2"><h2 class="text-lg font-semibold">Props</h2>`)
			w.Component(ctx, propsTable(info))
			w.Raw("</section>")
		}
		if len(info.Examples) > 0 {
			w.Raw(`<section class="flex flex-col gap-2"><h2 class="text-lg font-semibold">Examples</h2><ul class="list-disc pl-6 text-sm">`)
			for _, ex := range info.Examples {
				w.Raw("<li>")
				w.Text(ex)
				w.Raw("</li>")
			}
			w.Raw("</ul></section>")
		}
		return w.Err()
	})
}

func notFoundPage(err *errors.UIError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Raw(`<section class="flex flex-col gap-3"><h1 class="text-2xl font-bold">Not found</h1><p class="text-gray-600">`)
		w.Text(err.Message)
		w.Raw("</p>")
		if len(err.Suggestions) > 0 {
			w.Raw(`<p>Did you mean</p><ul class="flex gap-3">`)
			for _, s := range err.Suggestions {
				w.Raw(`<li><a class="text-[#00aeaf] underline" data-suggestion`)
				w.Attr("href", "/components/"+s)
				w.Raw(">")
				w.Text(s)
				w.Raw("</a></li>")
			}
			w.Raw("</ul>")
		}
		w.Raw(`<a href="/" class="text-sm underline">All components</a></section>`)
		return w.Err()
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(layout("Components", false, indexPage(s.registry.ByCategory()))).ServeHTTP(w, r)
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	info, err := s.registry.Lookup(name)
	if err != nil {
		s.errs.Handle(r.Context(), err)
		var ue *errors.UIError
		if !stderrors.As(err, &ue) {
			http.Error(w, "Component not found", http.StatusNotFound)
			return
		}
		templ.Handler(layout("Not found", false, notFoundPage(ue)), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		return
	}

	// the first paint comes from a throwaway session; the websocket brings
	// up the live one
	session := s.newSession(nil)
	defer session.Close()
	frag, err := session.Render(r.Context(), name)
	if err != nil {
		s.errs.Handle(r.Context(), err)
		http.Error(w, "Failed to render component", http.StatusInternalServerError)
		return
	}

	templ.Handler(layout(info.Name, true, componentPage(info, frag.HTML))).ServeHTTP(w, r)
}

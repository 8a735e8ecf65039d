package export

// pageTemplate is the static searchable page. The script mirrors the
// terminal behavior: literal case-insensitive matching, debounced
// input, restorable highlighting and count reconciliation, all without
// a server round trip.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      background: #f8f9fa;
      margin: 0;
      padding: 0;
    }
    .container {
      width: 100%;
      background: #fff;
      padding: 14px;
      box-sizing: border-box;
      min-height: 100vh;
      display: flex;
      flex-direction: column;
      align-items: center;
    }
    h1 {
      text-align: center;
      font-size: 1.4em;
      color: #2c3e50;
      margin: 10px 0 16px;
    }
    #searchInput {
      width: 90%;
      max-width: 500px;
      font-size: 1em;
      padding: 10px 14px;
      border-radius: 25px;
      border: 2px solid #007bff;
      margin-bottom: 12px;
    }
    .status-bar {
      display: flex;
      flex-wrap: wrap;
      gap: 8px;
      justify-content: center;
      margin-bottom: 14px;
    }
    .status-bar button {
      border: 1px solid #ccc;
      border-radius: 16px;
      background: #fff;
      padding: 5px 12px;
      font-size: 0.9em;
      cursor: pointer;
    }
    .status-bar button.active {
      border-color: #333;
      font-weight: bold;
      box-shadow: inset 0 0 0 1px #333;
    }
    .status-bar .count {
      margin-left: 5px;
      color: #555;
      font-size: 0.85em;
    }
    .table-wrapper {
      width: 100%;
      overflow-x: auto;
      -webkit-overflow-scrolling: touch;
      background: #fff;
      border-radius: 8px;
      box-shadow: 0 0 10px rgba(0,0,0,0.08);
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 0.95em;
      table-layout: auto;
      white-space: nowrap;
    }
    th, td {
      padding: 10px 12px;
      border-bottom: 1px solid #eee;
      text-align: left;
      vertical-align: top;
    }
    th {
      background: #007bff;
      color: white;
      position: sticky;
      top: 0;
      z-index: 1;
    }
    tr:nth-child(even) { background: #f8f8f8; }
    tr.group-header td {
      background: #eef3f8;
      font-weight: bold;
      color: #2c3e50;
    }
    mark {
      background: yellow;
      color: black;
      font-weight: bold;
    }
    .badge {
      display: inline-block;
      border-radius: 12px;
      padding: 2px 10px;
      font-size: 0.85em;
      font-weight: bold;
      color: #1e1e2e;
    }
    {{range .Statuses}}.badge-{{.Key}} { background: {{.Hex}}; }
    {{end}}
    a.wa { color: #007bff; text-decoration: none; }
    a.wa:hover { text-decoration: underline; }
    .no-results {
      display: none;
      text-align: center;
      color: #777;
      margin-top: 12px;
    }
    .updated {
      text-align: center;
      color: #777;
      margin-top: 10px;
      font-size: 0.85em;
    }
    @media (max-width: 600px) {
      table { font-size: 0.9em; }
      th, td { padding: 8px 10px; }
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>{{.Title}}</h1>
    <input id="searchInput" type="text" placeholder="&#128269; Search by name, number, status..." oninput="onSearchInput()" />
    <div class="status-bar" id="statusBar">
      {{range .Statuses}}<button data-status="{{.Key}}" onclick="toggleStatus('{{.Key}}')">{{.Label}}<span class="count" id="count-{{.Key}}">{{.Count}}</span></button>
      {{end}}
    </div>
    <div class="table-wrapper">
      <table id="dataTable">
        <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
        <tbody>
        {{range .Rows}}{{if .GroupHeader}}<tr class="group-header"><td colspan="5">{{.Group}}</td></tr>
        {{else}}<tr data-status="{{.StatusKey}}">
          <td>{{.Seq}}</td>
          <td>{{.Name}}</td>
          <td>{{if .WhatsApp}}<a class="wa" href="{{.WhatsApp}}" target="_blank" rel="noopener">{{.Phone}}</a>{{else}}{{.Phone}}{{end}}</td>
          <td>{{if .StatusLabel}}<span class="badge badge-{{.StatusKey}}">{{.StatusLabel}}</span>{{end}}</td>
          <td>{{.Remarks}}</td>
        </tr>
        {{end}}{{end}}
        </tbody>
      </table>
    </div>
    <div id="noResults" class="no-results">No matching results found</div>
    <div class="updated">Updated on {{.Updated}}</div>
  </div>
  <script>
    let activeStatus = '';
    let debounceTimer = null;

    function escapeHtml(text) {
      return text.replace(/[&<>"']/g, function(m) {
        return {'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;',"'":'&#039;'}[m];
      });
    }

    function escapeRegExp(text) {
      return text.replace(/[.*+?^${}()|[\]\\]/g, '\\$&');
    }

    function highlightText(text, term) {
      if (!term) return escapeHtml(text);
      const regex = new RegExp('(' + escapeRegExp(term) + ')', 'gi');
      return escapeHtml(text).replace(regex, '<mark>$1</mark>');
    }

    function onSearchInput() {
      clearTimeout(debounceTimer);
      debounceTimer = setTimeout(searchTable, 150);
    }

    function toggleStatus(key) {
      activeStatus = activeStatus === key ? '' : key;
      document.querySelectorAll('#statusBar button').forEach(b => {
        b.classList.toggle('active', b.dataset.status === activeStatus);
      });
      searchTable();
    }

    function searchTable() {
      const input = document.getElementById('searchInput');
      const filter = input.value.trim().toLowerCase();
      const rows = document.querySelectorAll('#dataTable tbody tr');
      let found = false;

      rows.forEach(row => {
        if (row.classList.contains('group-header')) return;

        const cells = row.querySelectorAll('td');
        let matchFound = false;
        cells.forEach(td => {
          const original = td.textContent || '';
          const keep = td.querySelector('a, .badge');
          const matches = filter && original.toLowerCase().includes(filter);
          if (matches) matchFound = true;
          if (keep) return;  // badges and links survive untouched
          td.innerHTML = matches ? highlightText(original, filter) : escapeHtml(original);
        });

        const statusOk = !activeStatus || (row.dataset.status || '') === activeStatus;
        const textOk = matchFound || !filter;
        row.style.display = statusOk && textOk ? '' : 'none';
        if (statusOk && textOk && filter) found = true;
      });

      document.getElementById('noResults').style.display =
        found || !filter ? 'none' : 'block';
      refreshCounts();
    }

    function refreshCounts() {
      const rows = document.querySelectorAll('#dataTable tbody tr[data-status]');
      const counts = {};
      rows.forEach(row => {
        const key = row.dataset.status;
        if (key) counts[key] = (counts[key] || 0) + 1;
      });
      document.querySelectorAll('#statusBar .count').forEach(span => {
        const key = span.id.replace('count-', '');
        span.textContent = counts[key] || 0;
      });
    }
  </script>
</body>
</html>
`

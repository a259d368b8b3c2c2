package render

import "fmt"

const noDataCSS = `
body { font-family: Arial, sans-serif; padding: 20px; margin: 0; background: white; }
.no-data { text-align: center; color: #666; font-size: 18px; padding: 50px; }
`

func tableCSS(o Options) string {
	return fmt.Sprintf(`
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
  font-size: %[1]dpx;
  line-height: 1.4;
  color: %[3]s;
  background: white;
  padding: 20px;
}
.container { max-width: 100%%; overflow-x: auto; background: white; padding: 20px; }
table { width: 100%%; border-collapse: collapse; margin: 0 auto; background: white; }
th, td {
  border: 1px solid %[4]s;
  padding: %[2]dpx;
  text-align: left;
  vertical-align: top;
  word-wrap: break-word;
  max-width: 200px;
  min-width: 60px;
}
th {
  background-color: %[5]s;
  font-weight: bold;
  text-align: center;
  border-bottom: 2px solid %[4]s;
}
tr:nth-child(even) { background-color: #f9f9f9; }
.cell-content { overflow: hidden; text-overflow: ellipsis; display: block; max-width: 180px; }
.row-number {
  background-color: #e9ecef;
  font-weight: bold;
  text-align: center;
  width: 50px;
  min-width: 50px;
  color: #6c757d;
}
.footer {
  margin-top: 20px;
  text-align: center;
  color: #6c757d;
  font-size: %[6]dpx;
  border-top: 1px solid #e0e0e0;
  padding-top: 15px;
}
`, o.FontSize, o.CellPadding, o.TextColor, o.BorderColor, o.HeaderColor, max(o.FontSize-2, 1))
}

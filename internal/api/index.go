package api

import "github.com/gofiber/fiber/v2"

// Index serves the upload form.
func (h *Handlers) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>textlift — OCR Text Extractor</title>
<style>
  body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
  fieldset { margin: 1rem 0; }
  textarea { width: 100%; min-height: 24rem; font-family: monospace; }
</style>
</head>
<body>
<h1>OCR Text Extractor</h1>
<p>Upload PDF documents or images to extract text. Language models are
loaded by the OCR engine on first use.</p>
<form id="extract-form">
  <fieldset>
    <legend>Files</legend>
    <input type="file" name="files" multiple
           accept=".pdf,.png,.jpg,.jpeg,.bmp,.tif,.tiff">
  </fieldset>
  <fieldset>
    <legend>Languages</legend>
    <label><input type="checkbox" name="languages" value="en" checked> English</label>
    <label><input type="checkbox" name="languages" value="es"> Spanish</label>
    <label><input type="checkbox" name="languages" value="fr"> French</label>
    <label><input type="checkbox" name="languages" value="de"> German</label>
    <label><input type="checkbox" name="languages" value="it"> Italian</label>
    <label><input type="checkbox" name="languages" value="pt"> Portuguese</label>
    <label><input type="checkbox" name="languages" value="zh_sim"> Chinese (simplified)</label>
    <label><input type="checkbox" name="languages" value="ja"> Japanese</label>
  </fieldset>
  <button type="submit">Extract text</button>
</form>
<h2>Recognized Text</h2>
<textarea id="output" readonly></textarea>
<script>
document.getElementById("extract-form").addEventListener("submit", async (ev) => {
  ev.preventDefault();
  const output = document.getElementById("output");
  output.value = "Processing...";
  try {
    const resp = await fetch("/api/v1/extract", {
      method: "POST",
      body: new FormData(ev.target),
    });
    const data = await resp.json();
    output.value = resp.ok ? data.text : (data.error || "Request failed");
  } catch (err) {
    output.value = "Request failed: " + err;
  }
});
</script>
</body>
</html>
`

package palette

import "fmt"

// Script returns the self-contained chart bootstrap embedded in exported
// documents. It re-implements the palette algorithm in JavaScript,
// emitted from the same hueStep/fillOpacity constants as the native
// code, queries every chart placeholder at load time, and instantiates
// one chart per placeholder from its serialized attributes.
func Script() string {
	return fmt.Sprintf(scriptTemplate, hueStep, fillOpacity)
}

// scriptTemplate takes the hue step (int) and fill opacity (float), in
// that order. Everything else is fixed JavaScript.
const scriptTemplate = `
    (function () {
        var HUE_STEP = %d;
        var FILL_OPACITY = %g;

        function hexToRgb(hex) {
            var m = /^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$/i.exec(hex);
            return m
                ? { r: parseInt(m[1], 16), g: parseInt(m[2], 16), b: parseInt(m[3], 16) }
                : { r: 0, g: 0, b: 0 };
        }

        function shiftHue(rgb, degrees) {
            var r = rgb.r / 255, g = rgb.g / 255, b = rgb.b / 255;
            var max = Math.max(r, g, b), min = Math.min(r, g, b);
            var h = 0, s = 0, l = (max + min) / 2;
            if (max !== min) {
                var d = max - min;
                s = l > 0.5 ? d / (2 - max - min) : d / (max + min);
                switch (max) {
                    case r: h = (g - b) / d + (g < b ? 6 : 0); break;
                    case g: h = (b - r) / d + 2; break;
                    case b: h = (r - g) / d + 4; break;
                }
                h = h * 60;
            }
            h = (h + degrees) %% 360;
            var c = (1 - Math.abs(2 * l - 1)) * s;
            var x = c * (1 - Math.abs((h / 60) %% 2 - 1));
            var m = l - c / 2;
            var r1, g1, b1;
            if (h < 60) { r1 = c; g1 = x; b1 = 0; }
            else if (h < 120) { r1 = x; g1 = c; b1 = 0; }
            else if (h < 180) { r1 = 0; g1 = c; b1 = x; }
            else if (h < 240) { r1 = 0; g1 = x; b1 = c; }
            else if (h < 300) { r1 = x; g1 = 0; b1 = c; }
            else { r1 = c; g1 = 0; b1 = x; }
            return {
                r: Math.round((r1 + m) * 255),
                g: Math.round((g1 + m) * 255),
                b: Math.round((b1 + m) * 255)
            };
        }

        function fill(rgb) {
            return 'rgba(' + rgb.r + ', ' + rgb.g + ', ' + rgb.b + ', ' + FILL_OPACITY + ')';
        }

        function stroke(rgb) {
            return 'rgb(' + rgb.r + ', ' + rgb.g + ', ' + rgb.b + ')';
        }

        function seriesColors(type, base, n) {
            var rgb = hexToRgb(base);
            if (type !== 'pie') {
                return { background: fill(rgb), border: stroke(rgb) };
            }
            var background = [], border = [];
            for (var i = 0; i < n; i++) {
                var shifted = shiftHue(rgb, (i * HUE_STEP) %% 360);
                background.push(fill(shifted));
                border.push(stroke(shifted));
            }
            return { background: background, border: border };
        }

        document.addEventListener('DOMContentLoaded', function () {
            var canvases = document.querySelectorAll('.chart-canvas');
            canvases.forEach(function (canvas) {
                var type = canvas.getAttribute('data-type');
                var payload;
                try {
                    payload = JSON.parse(canvas.getAttribute('data-chart'));
                } catch (e) {
                    return;
                }
                if (!payload || !payload.labels || !payload.values) {
                    return;
                }
                var colors = seriesColors(type, payload.baseColor || '#3a6ea5', payload.labels.length);
                new Chart(canvas.getContext('2d'), {
                    type: type,
                    data: {
                        labels: payload.labels,
                        datasets: [{
                            label: payload.title || 'Dataset',
                            data: payload.values,
                            backgroundColor: colors.background,
                            borderColor: colors.border,
                            borderWidth: 1
                        }]
                    },
                    options: {
                        responsive: true,
                        maintainAspectRatio: false,
                        plugins: {
                            legend: { position: 'top' },
                            title: { display: true, text: payload.title || '' }
                        }
                    }
                });
            });
        });
    })();
`

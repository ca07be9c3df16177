package views

import (
	"bytes"
	"fmt"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// WriteStyle emits the page stylesheet with the theme colors bound as
// CSS variables. The live page and the static exporter embed the same
// rules, so the visual structure matches section for section.
func WriteStyle(buf *bytes.Buffer, theme page.Theme) {
	t := theme.WithDefaults()
	fmt.Fprintf(buf, styleTemplate, t.Primary, t.Secondary, t.Accent)
}

// styleTemplate takes primary, secondary, and accent colors in order.
const styleTemplate = `
        :root {
            --primary-color: %s;
            --secondary-color: %s;
            --accent-color: %s;
            --text-color: #333;
            --light-bg: #f8f9fa;
            --white: #ffffff;
            --section-padding: 60px 0;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Helvetica Neue', Arial, sans-serif;
            color: var(--text-color);
            line-height: 1.6;
        }

        .container {
            width: 90%%;
            max-width: 1200px;
            margin: 0 auto;
        }

        header {
            background-color: var(--primary-color);
            color: var(--white);
            padding: 20px 0;
            position: fixed;
            width: 100%%;
            top: 0;
            z-index: 1000;
        }

        .header-content {
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        .logo {
            font-size: 1.5rem;
            font-weight: bold;
        }

        nav ul {
            display: flex;
            list-style: none;
            flex-wrap: wrap;
        }

        nav ul li {
            margin-left: 20px;
            margin-bottom: 5px;
        }

        nav ul li a {
            color: var(--white);
            text-decoration: none;
            padding: 5px 10px;
            border-radius: 4px;
            transition: background-color 0.3s;
        }

        nav ul li a:hover {
            background-color: rgba(255, 255, 255, 0.2);
        }

        .hero {
            background: linear-gradient(rgba(58, 110, 165, 0.8), rgba(58, 110, 165, 0.9));
            background-size: cover;
            background-position: center;
            height: 50vh;
            display: flex;
            align-items: center;
            text-align: center;
            color: var(--white);
            padding-top: 80px;
        }

        .hero-content {
            max-width: 800px;
            margin: 0 auto;
        }

        .hero h1 {
            font-size: 3rem;
            margin-bottom: 20px;
        }

        .hero p {
            font-size: 1.2rem;
            margin-bottom: 30px;
        }

        .content-section {
            padding: var(--section-padding);
            margin-bottom: 30px;
        }

        .content-section:nth-child(odd) {
            background-color: var(--white);
        }

        .content-section:nth-child(even) {
            background-color: var(--light-bg);
        }

        .section-title {
            text-align: center;
            margin-bottom: 30px;
        }

        .section-title h2 {
            font-size: 2.2rem;
            color: var(--primary-color);
            margin-bottom: 15px;
        }

        .section-content {
            max-width: 900px;
            margin: 0 auto;
        }

        .text-content p {
            margin-bottom: 15px;
            line-height: 1.8;
        }

        .image-content {
            text-align: center;
        }

        .image-grid {
            display: grid;
            gap: 15px;
            width: 100%%;
        }

        .image-grid.grid-1 {
            grid-template-columns: 1fr;
        }

        .image-grid.grid-2 {
            grid-template-columns: 1fr 1fr;
        }

        .image-grid.grid-3 {
            grid-template-columns: 1fr 1fr 1fr;
        }

        @media (max-width: 768px) {
            .image-grid.grid-3 {
                grid-template-columns: 1fr 1fr;
            }
        }

        @media (max-width: 480px) {
            .image-grid.grid-2,
            .image-grid.grid-3 {
                grid-template-columns: 1fr;
            }
        }

        .image-item {
            position: relative;
            border-radius: 8px;
            overflow: hidden;
        }

        .section-image {
            max-width: 100%%;
            border-radius: 8px;
            box-shadow: 0 3px 10px rgba(0, 0, 0, 0.1);
        }

        .cards-content {
            display: flex;
            flex-wrap: wrap;
            gap: 20px;
            justify-content: center;
        }

        .card {
            flex: 1;
            min-width: 250px;
            max-width: 350px;
            background-color: var(--white);
            border-radius: 8px;
            box-shadow: 0 3px 10px rgba(0, 0, 0, 0.1);
            padding: 20px;
            transition: transform 0.3s;
        }

        .card:hover {
            transform: translateY(-5px);
        }

        .card-title {
            color: var(--primary-color);
            margin-bottom: 15px;
        }

        .card-body p {
            margin-bottom: 10px;
        }

        .chart-content {
            background-color: var(--white);
            border-radius: 8px;
            box-shadow: 0 3px 10px rgba(0, 0, 0, 0.1);
            padding: 20px;
        }

        .chart-container {
            position: relative;
            height: 400px;
            width: 100%%;
        }

        .chart-error {
            background-color: #fff3f3;
            border: 1px solid var(--secondary-color);
            border-radius: 8px;
            padding: 20px;
        }

        .chart-error pre {
            margin-top: 10px;
            overflow-x: auto;
            font-size: 0.85rem;
        }

        footer {
            background-color: var(--primary-color);
            color: var(--white);
            padding: 20px 0;
            text-align: center;
        }

        .footer-content {
            display: flex;
            flex-direction: column;
            align-items: center;
        }

        .copyright {
            margin-top: 10px;
            font-size: 0.9rem;
        }

        @media (max-width: 768px) {
            .header-content {
                flex-direction: column;
            }

            nav ul {
                margin-top: 20px;
                justify-content: center;
            }

            nav ul li {
                margin: 0 10px 10px;
            }

            .hero h1 {
                font-size: 2.5rem;
            }
        }
`

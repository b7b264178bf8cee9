package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"sort"
	"strings"
	"time"

	"auth-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

const reportTimeout = 30 * time.Second

func sendDiscordMessageAsync(_ *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(ctx, msg); err != nil {
				// the request logger is gone by now
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessageForDiscord splits on line boundaries into chunks of at most DiscordMaxMessageLen.
func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ AUTH SERVICE ERROR ================\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString("----------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for key := range c.Request.Header {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString("Headers :\n")
		for _, key := range keys {
			value := strings.Join(c.Request.Header[key], ", ")
			if sensitiveHeaders[key] {
				value = redacted
			}
			fmt.Fprintf(&sb, "    %s: %s\n", key, value)
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	if params := redactValues(c.Request.URL.Query()); params != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", params)
	}

	if body := readRedactedBody(c); body != "" {
		sb.WriteString("Body    :\n")
		sb.WriteString("    " + body + "\n")
		sb.WriteString("----------------------------------------------------\n")
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}

// readRedactedBody reads the request body, restores it for later readers and masks credentials.
func readRedactedBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bodyBytes) == 0 {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var obj map[string]any
	if err := json.Unmarshal(bodyBytes, &obj); err == nil {
		for k := range obj {
			if sensitiveFields[strings.ToLower(k)] {
				obj[k] = redacted
			}
		}
		out, _ := json.Marshal(obj)
		return string(out)
	}
	if values, err := url.ParseQuery(string(bodyBytes)); err == nil {
		return redactValues(values)
	}
	return "<unparsed body omitted>"
}

func redactValues(values url.Values) string {
	for k := range values {
		if sensitiveFields[strings.ToLower(k)] {
			values.Set(k, redacted)
		}
	}
	return values.Encode()
}

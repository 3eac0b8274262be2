package bridge

import (
	"context"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ClassFileContents resolves the decompiled or attached source text for a
// jdt virtual document.
func (r *jsonRPCRouter) ClassFileContents(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTextDocumentIdentifier(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	contents, err := r.contents.Contents(ctx, *params)
	return reply(ctx, contents, err)
}

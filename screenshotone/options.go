package screenshotone

// Options is implemented by the two request builders accepted by the
// Client. The interface is closed: only TakeOptions and AnimateOptions
// satisfy it, which makes the take/animate dispatch in the Client
// exhaustive.
type Options interface {
	// Query returns an independent snapshot of the accumulated
	// parameters. Later setter calls never affect a snapshot already
	// taken, and mutating the snapshot never affects the builder.
	Query() Query

	endpoint() string
	params() *Query
}

// TakeOptions accumulates parameters for a static screenshot request
// against the take endpoint. Construct it with TakeWithURL,
// TakeWithHTML or TakeWithMarkdown, then chain setters:
//
//	opts := screenshotone.TakeWithURL("https://example.com").
//		BlockAds(true).
//		FullPage(true)
//
// No value is validated client-side; unsupported combinations are
// rejected by the API and surfaced as an *APIError.
type TakeOptions struct {
	q Query
}

// TakeWithURL starts a screenshot request for a page URL.
func TakeWithURL(pageURL string) *TakeOptions {
	o := &TakeOptions{q: NewQuery()}
	o.q.Set("url", pageURL)
	return o
}

// TakeWithHTML starts a screenshot request for an inline HTML document.
func TakeWithHTML(html string) *TakeOptions {
	o := &TakeOptions{q: NewQuery()}
	o.q.Set("html", html)
	return o
}

// TakeWithMarkdown starts a screenshot request for an inline Markdown
// document.
func TakeWithMarkdown(markdown string) *TakeOptions {
	o := &TakeOptions{q: NewQuery()}
	o.q.Set("markdown", markdown)
	return o
}

// Query implements Options.
func (o *TakeOptions) Query() Query {
	return o.q.Clone()
}

func (o *TakeOptions) endpoint() string { return takeEndpoint }

func (o *TakeOptions) params() *Query { return &o.q }

// Param sets an arbitrary parameter. It is an escape hatch for API
// options that have no typed setter yet. One value means single-value
// semantics, more than one means repeated key=value pairs.
func (o *TakeOptions) Param(key string, values ...string) *TakeOptions {
	if len(values) == 1 {
		o.q.Set(key, values[0])
	} else {
		o.q.Add(key, values...)
	}
	return o
}

// Selector restricts the capture to the first element matching the CSS
// selector.
func (o *TakeOptions) Selector(selector string) *TakeOptions {
	o.q.Set("selector", selector)
	return o
}

// ErrorOnSelectorNotFound makes the API fail instead of falling back to
// a viewport capture when the selector matches nothing.
func (o *TakeOptions) ErrorOnSelectorNotFound(errorOn bool) *TakeOptions {
	o.q.Set("error_on_selector_not_found", formatBool(errorOn))
	return o
}

// Format chooses the output encoding (png, jpeg, webp, gif, jp2, tiff,
// avif, heif, pdf, html).
func (o *TakeOptions) Format(format string) *TakeOptions {
	o.q.Set("format", format)
	return o
}

// ImageQuality sets the compression quality, 0 to 100, for lossy
// formats.
func (o *TakeOptions) ImageQuality(quality int) *TakeOptions {
	o.q.Set("image_quality", formatInt(quality))
	return o
}

// ImageWidth resizes the rendered image to the given width.
func (o *TakeOptions) ImageWidth(width int) *TakeOptions {
	o.q.Set("image_width", formatInt(width))
	return o
}

// ImageHeight resizes the rendered image to the given height.
func (o *TakeOptions) ImageHeight(height int) *TakeOptions {
	o.q.Set("image_height", formatInt(height))
	return o
}

// OmitBackground renders the page without the default white background.
func (o *TakeOptions) OmitBackground(omit bool) *TakeOptions {
	o.q.Set("omit_background", formatBool(omit))
	return o
}

// FullPage captures the whole scrollable page instead of the viewport.
func (o *TakeOptions) FullPage(fullPage bool) *TakeOptions {
	o.q.Set("full_page", formatBool(fullPage))
	return o
}

// FullPageScroll scrolls through the page before a full-page capture to
// trigger lazy-loaded content.
func (o *TakeOptions) FullPageScroll(scroll bool) *TakeOptions {
	o.q.Set("full_page_scroll", formatBool(scroll))
	return o
}

// FullPageMaxHeight caps the height of a full-page capture in pixels.
func (o *TakeOptions) FullPageMaxHeight(maxHeight int) *TakeOptions {
	o.q.Set("full_page_max_height", formatInt(maxHeight))
	return o
}

// Clip limits the capture to the given rectangle of the page.
func (o *TakeOptions) Clip(x, y, width, height int) *TakeOptions {
	o.q.Set("clip_x", formatInt(x))
	o.q.Set("clip_y", formatInt(y))
	o.q.Set("clip_width", formatInt(width))
	o.q.Set("clip_height", formatInt(height))
	return o
}

// ViewportWidth sets the browser viewport width in pixels.
func (o *TakeOptions) ViewportWidth(width int) *TakeOptions {
	o.q.Set("viewport_width", formatInt(width))
	return o
}

// ViewportHeight sets the browser viewport height in pixels.
func (o *TakeOptions) ViewportHeight(height int) *TakeOptions {
	o.q.Set("viewport_height", formatInt(height))
	return o
}

// ViewportDevice emulates a named device preset; it overrides the
// individual viewport options.
func (o *TakeOptions) ViewportDevice(device string) *TakeOptions {
	o.q.Set("viewport_device", device)
	return o
}

// ViewportMobile enables mobile viewport emulation.
func (o *TakeOptions) ViewportMobile(mobile bool) *TakeOptions {
	o.q.Set("viewport_mobile", formatBool(mobile))
	return o
}

// ViewportHasTouch marks the emulated viewport as touch-capable.
func (o *TakeOptions) ViewportHasTouch(hasTouch bool) *TakeOptions {
	o.q.Set("viewport_has_touch", formatBool(hasTouch))
	return o
}

// ViewportLandscape switches the emulated viewport to landscape.
func (o *TakeOptions) ViewportLandscape(landscape bool) *TakeOptions {
	o.q.Set("viewport_landscape", formatBool(landscape))
	return o
}

// DeviceScaleFactor sets the device pixel ratio.
func (o *TakeOptions) DeviceScaleFactor(factor int) *TakeOptions {
	o.q.Set("device_scale_factor", formatInt(factor))
	return o
}

// BlockAds removes known advertisements before capturing.
func (o *TakeOptions) BlockAds(block bool) *TakeOptions {
	o.q.Set("block_ads", formatBool(block))
	return o
}

// BlockCookieBanners dismisses cookie consent banners before capturing.
func (o *TakeOptions) BlockCookieBanners(block bool) *TakeOptions {
	o.q.Set("block_cookie_banners", formatBool(block))
	return o
}

// BlockBannersByHeuristics hides banner-like elements detected
// heuristically.
func (o *TakeOptions) BlockBannersByHeuristics(block bool) *TakeOptions {
	o.q.Set("block_banners_by_heuristics", formatBool(block))
	return o
}

// BlockTrackers blocks known tracking scripts.
func (o *TakeOptions) BlockTrackers(block bool) *TakeOptions {
	o.q.Set("block_trackers", formatBool(block))
	return o
}

// BlockChats hides chat widgets.
func (o *TakeOptions) BlockChats(block bool) *TakeOptions {
	o.q.Set("block_chats", formatBool(block))
	return o
}

// BlockRequests blocks requests whose URL matches any of the patterns.
// Repeated calls append.
func (o *TakeOptions) BlockRequests(patterns ...string) *TakeOptions {
	o.q.Add("block_requests", patterns...)
	return o
}

// BlockResources blocks resource types (image, media, font, script and
// so on). Repeated calls append.
func (o *TakeOptions) BlockResources(types ...string) *TakeOptions {
	o.q.Add("block_resources", types...)
	return o
}

// HideSelectors hides every element matching any of the CSS selectors.
// Repeated calls append.
func (o *TakeOptions) HideSelectors(selectors ...string) *TakeOptions {
	o.q.Add("hide_selectors", selectors...)
	return o
}

// Click clicks the first element matching the selector before
// capturing.
func (o *TakeOptions) Click(selector string) *TakeOptions {
	o.q.Set("click", selector)
	return o
}

// UserAgent overrides the browser user agent header.
func (o *TakeOptions) UserAgent(userAgent string) *TakeOptions {
	o.q.Set("user_agent", userAgent)
	return o
}

// Authorization sets the Authorization header sent to the target page.
func (o *TakeOptions) Authorization(authorization string) *TakeOptions {
	o.q.Set("authorization", authorization)
	return o
}

// Cookies sends cookies with the page request, each in
// "name=value; Path=/" form. Repeated calls append.
func (o *TakeOptions) Cookies(cookies ...string) *TakeOptions {
	o.q.Add("cookies", cookies...)
	return o
}

// Headers sends extra HTTP headers with the page request, each in
// "Name: value" form. Repeated calls append.
func (o *TakeOptions) Headers(headers ...string) *TakeOptions {
	o.q.Add("headers", headers...)
	return o
}

// Proxy routes the page request through the given proxy URL.
func (o *TakeOptions) Proxy(proxyURL string) *TakeOptions {
	o.q.Set("proxy", proxyURL)
	return o
}

// BypassCSP disables Content-Security-Policy enforcement while
// rendering.
func (o *TakeOptions) BypassCSP(bypass bool) *TakeOptions {
	o.q.Set("bypass_csp", formatBool(bypass))
	return o
}

// IPCountryCode requests an egress IP from the given country.
func (o *TakeOptions) IPCountryCode(countryCode string) *TakeOptions {
	o.q.Set("ip_country_code", countryCode)
	return o
}

// TimeZone emulates the given IANA time zone while rendering.
func (o *TakeOptions) TimeZone(timeZone string) *TakeOptions {
	o.q.Set("time_zone", timeZone)
	return o
}

// GeolocationLatitude emulates the latitude reported to the page.
func (o *TakeOptions) GeolocationLatitude(latitude float64) *TakeOptions {
	o.q.Set("geolocation_latitude", formatCoordinate(latitude))
	return o
}

// GeolocationLongitude emulates the longitude reported to the page.
func (o *TakeOptions) GeolocationLongitude(longitude float64) *TakeOptions {
	o.q.Set("geolocation_longitude", formatCoordinate(longitude))
	return o
}

// GeolocationAccuracy emulates the geolocation accuracy in meters.
func (o *TakeOptions) GeolocationAccuracy(accuracy int) *TakeOptions {
	o.q.Set("geolocation_accuracy", formatInt(accuracy))
	return o
}

// DarkMode prefers the dark color scheme while rendering.
func (o *TakeOptions) DarkMode(darkMode bool) *TakeOptions {
	o.q.Set("dark_mode", formatBool(darkMode))
	return o
}

// ReducedMotion asks the page to minimize animations.
func (o *TakeOptions) ReducedMotion(reduced bool) *TakeOptions {
	o.q.Set("reduced_motion", formatBool(reduced))
	return o
}

// MediaType emulates "screen" or "print" CSS media.
func (o *TakeOptions) MediaType(mediaType string) *TakeOptions {
	o.q.Set("media_type", mediaType)
	return o
}

// Scripts injects JavaScript into the page before capturing.
func (o *TakeOptions) Scripts(scripts string) *TakeOptions {
	o.q.Set("scripts", scripts)
	return o
}

// ScriptsWaitUntil waits for the given event after script injection.
func (o *TakeOptions) ScriptsWaitUntil(waitUntil ...string) *TakeOptions {
	o.q.Add("scripts_wait_until", waitUntil...)
	return o
}

// Styles injects CSS into the page before capturing.
func (o *TakeOptions) Styles(styles string) *TakeOptions {
	o.q.Set("styles", styles)
	return o
}

// Delay waits the given number of seconds after load before capturing.
func (o *TakeOptions) Delay(seconds int) *TakeOptions {
	o.q.Set("delay", formatInt(seconds))
	return o
}

// Timeout tells the renderer how long the whole request may take, in
// seconds. It does not bound the local HTTP call.
func (o *TakeOptions) Timeout(seconds int) *TakeOptions {
	o.q.Set("timeout", formatInt(seconds))
	return o
}

// NavigationTimeout bounds the page navigation phase, in seconds.
func (o *TakeOptions) NavigationTimeout(seconds int) *TakeOptions {
	o.q.Set("navigation_timeout", formatInt(seconds))
	return o
}

// WaitUntil waits for the given browser events before capturing.
// Repeated calls append.
func (o *TakeOptions) WaitUntil(events ...string) *TakeOptions {
	o.q.Add("wait_until", events...)
	return o
}

// WaitForSelector waits until the selector matches before capturing.
func (o *TakeOptions) WaitForSelector(selector string) *TakeOptions {
	o.q.Set("wait_for_selector", selector)
	return o
}

// Cache allows the API to serve a cached rendering.
func (o *TakeOptions) Cache(cache bool) *TakeOptions {
	o.q.Set("cache", formatBool(cache))
	return o
}

// CacheTTL sets the cache lifetime in seconds.
func (o *TakeOptions) CacheTTL(seconds int) *TakeOptions {
	o.q.Set("cache_ttl", formatInt(seconds))
	return o
}

// CacheKey namespaces the cache entry.
func (o *TakeOptions) CacheKey(key string) *TakeOptions {
	o.q.Set("cache_key", key)
	return o
}

// MetadataImageSize returns the rendered image dimensions in response
// headers.
func (o *TakeOptions) MetadataImageSize(include bool) *TakeOptions {
	o.q.Set("metadata_image_size", formatBool(include))
	return o
}

// MetadataFonts returns the fonts used by the page in response headers.
func (o *TakeOptions) MetadataFonts(include bool) *TakeOptions {
	o.q.Set("metadata_fonts", formatBool(include))
	return o
}

// MetadataOpenGraph returns the page's Open Graph data in response
// headers.
func (o *TakeOptions) MetadataOpenGraph(include bool) *TakeOptions {
	o.q.Set("metadata_open_graph", formatBool(include))
	return o
}

// Async makes the API respond immediately and deliver the result out of
// band.
func (o *TakeOptions) Async(async bool) *TakeOptions {
	o.q.Set("async", formatBool(async))
	return o
}

// WebhookURL delivers the rendered result to the given URL.
func (o *TakeOptions) WebhookURL(webhookURL string) *TakeOptions {
	o.q.Set("webhook_url", webhookURL)
	return o
}

// WebhookSign signs webhook deliveries.
func (o *TakeOptions) WebhookSign(sign bool) *TakeOptions {
	o.q.Set("webhook_sign", formatBool(sign))
	return o
}

// ResponseType selects the response shape: by_format (the asset bytes),
// empty or json.
func (o *TakeOptions) ResponseType(responseType string) *TakeOptions {
	o.q.Set("response_type", responseType)
	return o
}

// Store uploads the rendered asset to the configured storage instead of
// only returning it.
func (o *TakeOptions) Store(store bool) *TakeOptions {
	o.q.Set("store", formatBool(store))
	return o
}

// StoragePath sets the object key (without extension) for stored
// assets.
func (o *TakeOptions) StoragePath(path string) *TakeOptions {
	o.q.Set("storage_path", path)
	return o
}

// StorageBucket overrides the storage bucket for this request.
func (o *TakeOptions) StorageBucket(bucket string) *TakeOptions {
	o.q.Set("storage_bucket", bucket)
	return o
}

// StorageClass sets the storage class of the stored object.
func (o *TakeOptions) StorageClass(class string) *TakeOptions {
	o.q.Set("storage_class", class)
	return o
}

// StorageACL sets the canned ACL of the stored object.
func (o *TakeOptions) StorageACL(acl string) *TakeOptions {
	o.q.Set("storage_acl", acl)
	return o
}

// StorageEndpoint points storage uploads at an S3-compatible endpoint.
func (o *TakeOptions) StorageEndpoint(endpoint string) *TakeOptions {
	o.q.Set("storage_endpoint", endpoint)
	return o
}

// StorageAccessKeyID overrides the storage credentials for this
// request.
func (o *TakeOptions) StorageAccessKeyID(accessKeyID string) *TakeOptions {
	o.q.Set("storage_access_key_id", accessKeyID)
	return o
}

// StorageSecretAccessKey overrides the storage credentials for this
// request.
func (o *TakeOptions) StorageSecretAccessKey(secretAccessKey string) *TakeOptions {
	o.q.Set("storage_secret_access_key", secretAccessKey)
	return o
}

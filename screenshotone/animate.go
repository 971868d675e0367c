package screenshotone

// AnimateOptions accumulates parameters for an animated capture (a
// scrolling video or GIF of the page) against the animate endpoint. It
// mirrors the TakeOptions surface where the concepts overlap and adds
// the motion options; both builder types are accepted by the Client's
// Store operation.
type AnimateOptions struct {
	q Query
}

// AnimateWithURL starts an animated capture for a page URL.
func AnimateWithURL(pageURL string) *AnimateOptions {
	o := &AnimateOptions{q: NewQuery()}
	o.q.Set("url", pageURL)
	return o
}

// AnimateWithHTML starts an animated capture for an inline HTML
// document.
func AnimateWithHTML(html string) *AnimateOptions {
	o := &AnimateOptions{q: NewQuery()}
	o.q.Set("html", html)
	return o
}

// AnimateWithMarkdown starts an animated capture for an inline Markdown
// document.
func AnimateWithMarkdown(markdown string) *AnimateOptions {
	o := &AnimateOptions{q: NewQuery()}
	o.q.Set("markdown", markdown)
	return o
}

// Query implements Options.
func (o *AnimateOptions) Query() Query {
	return o.q.Clone()
}

func (o *AnimateOptions) endpoint() string { return animateEndpoint }

func (o *AnimateOptions) params() *Query { return &o.q }

// Param sets an arbitrary parameter, see TakeOptions.Param.
func (o *AnimateOptions) Param(key string, values ...string) *AnimateOptions {
	if len(values) == 1 {
		o.q.Set(key, values[0])
	} else {
		o.q.Add(key, values...)
	}
	return o
}

// Format chooses the output encoding (mp4, webm, gif).
func (o *AnimateOptions) Format(format string) *AnimateOptions {
	o.q.Set("format", format)
	return o
}

// Duration sets the length of the recording in seconds.
func (o *AnimateOptions) Duration(seconds int) *AnimateOptions {
	o.q.Set("duration", formatInt(seconds))
	return o
}

// Scenario picks the recording scenario, for example "scroll".
func (o *AnimateOptions) Scenario(scenario string) *AnimateOptions {
	o.q.Set("scenario", scenario)
	return o
}

// ScrollDelay waits the given milliseconds before scrolling starts.
func (o *AnimateOptions) ScrollDelay(milliseconds int) *AnimateOptions {
	o.q.Set("scroll_delay", formatInt(milliseconds))
	return o
}

// ScrollDuration sets the duration of one scroll step in milliseconds.
func (o *AnimateOptions) ScrollDuration(milliseconds int) *AnimateOptions {
	o.q.Set("scroll_duration", formatInt(milliseconds))
	return o
}

// ScrollBy sets the scroll step in pixels.
func (o *AnimateOptions) ScrollBy(pixels int) *AnimateOptions {
	o.q.Set("scroll_by", formatInt(pixels))
	return o
}

// ScrollStartImmediately starts scrolling without waiting for the
// initial delay.
func (o *AnimateOptions) ScrollStartImmediately(start bool) *AnimateOptions {
	o.q.Set("scroll_start_immediately", formatBool(start))
	return o
}

// ScrollBack scrolls back to the top at the end of the recording.
func (o *AnimateOptions) ScrollBack(back bool) *AnimateOptions {
	o.q.Set("scroll_back", formatBool(back))
	return o
}

// ScrollComplete scrolls the full page height before the recording
// ends.
func (o *AnimateOptions) ScrollComplete(complete bool) *AnimateOptions {
	o.q.Set("scroll_complete", formatBool(complete))
	return o
}

// ScrollEasing sets the scroll easing function.
func (o *AnimateOptions) ScrollEasing(easing string) *AnimateOptions {
	o.q.Set("scroll_easing", easing)
	return o
}

func (o *AnimateOptions) ViewportWidth(width int) *AnimateOptions {
	o.q.Set("viewport_width", formatInt(width))
	return o
}

func (o *AnimateOptions) ViewportHeight(height int) *AnimateOptions {
	o.q.Set("viewport_height", formatInt(height))
	return o
}

func (o *AnimateOptions) ViewportDevice(device string) *AnimateOptions {
	o.q.Set("viewport_device", device)
	return o
}

func (o *AnimateOptions) ViewportMobile(mobile bool) *AnimateOptions {
	o.q.Set("viewport_mobile", formatBool(mobile))
	return o
}

func (o *AnimateOptions) DeviceScaleFactor(factor int) *AnimateOptions {
	o.q.Set("device_scale_factor", formatInt(factor))
	return o
}

func (o *AnimateOptions) BlockAds(block bool) *AnimateOptions {
	o.q.Set("block_ads", formatBool(block))
	return o
}

func (o *AnimateOptions) BlockCookieBanners(block bool) *AnimateOptions {
	o.q.Set("block_cookie_banners", formatBool(block))
	return o
}

func (o *AnimateOptions) BlockBannersByHeuristics(block bool) *AnimateOptions {
	o.q.Set("block_banners_by_heuristics", formatBool(block))
	return o
}

func (o *AnimateOptions) BlockTrackers(block bool) *AnimateOptions {
	o.q.Set("block_trackers", formatBool(block))
	return o
}

func (o *AnimateOptions) BlockChats(block bool) *AnimateOptions {
	o.q.Set("block_chats", formatBool(block))
	return o
}

func (o *AnimateOptions) BlockRequests(patterns ...string) *AnimateOptions {
	o.q.Add("block_requests", patterns...)
	return o
}

func (o *AnimateOptions) BlockResources(types ...string) *AnimateOptions {
	o.q.Add("block_resources", types...)
	return o
}

func (o *AnimateOptions) HideSelectors(selectors ...string) *AnimateOptions {
	o.q.Add("hide_selectors", selectors...)
	return o
}

func (o *AnimateOptions) UserAgent(userAgent string) *AnimateOptions {
	o.q.Set("user_agent", userAgent)
	return o
}

func (o *AnimateOptions) Authorization(authorization string) *AnimateOptions {
	o.q.Set("authorization", authorization)
	return o
}

func (o *AnimateOptions) Cookies(cookies ...string) *AnimateOptions {
	o.q.Add("cookies", cookies...)
	return o
}

func (o *AnimateOptions) Headers(headers ...string) *AnimateOptions {
	o.q.Add("headers", headers...)
	return o
}

func (o *AnimateOptions) Proxy(proxyURL string) *AnimateOptions {
	o.q.Set("proxy", proxyURL)
	return o
}

func (o *AnimateOptions) IPCountryCode(countryCode string) *AnimateOptions {
	o.q.Set("ip_country_code", countryCode)
	return o
}

func (o *AnimateOptions) TimeZone(timeZone string) *AnimateOptions {
	o.q.Set("time_zone", timeZone)
	return o
}

func (o *AnimateOptions) GeolocationLatitude(latitude float64) *AnimateOptions {
	o.q.Set("geolocation_latitude", formatCoordinate(latitude))
	return o
}

func (o *AnimateOptions) GeolocationLongitude(longitude float64) *AnimateOptions {
	o.q.Set("geolocation_longitude", formatCoordinate(longitude))
	return o
}

func (o *AnimateOptions) GeolocationAccuracy(accuracy int) *AnimateOptions {
	o.q.Set("geolocation_accuracy", formatInt(accuracy))
	return o
}

func (o *AnimateOptions) DarkMode(darkMode bool) *AnimateOptions {
	o.q.Set("dark_mode", formatBool(darkMode))
	return o
}

func (o *AnimateOptions) ReducedMotion(reduced bool) *AnimateOptions {
	o.q.Set("reduced_motion", formatBool(reduced))
	return o
}

func (o *AnimateOptions) MediaType(mediaType string) *AnimateOptions {
	o.q.Set("media_type", mediaType)
	return o
}

func (o *AnimateOptions) Scripts(scripts string) *AnimateOptions {
	o.q.Set("scripts", scripts)
	return o
}

func (o *AnimateOptions) Styles(styles string) *AnimateOptions {
	o.q.Set("styles", styles)
	return o
}

func (o *AnimateOptions) Delay(seconds int) *AnimateOptions {
	o.q.Set("delay", formatInt(seconds))
	return o
}

func (o *AnimateOptions) Timeout(seconds int) *AnimateOptions {
	o.q.Set("timeout", formatInt(seconds))
	return o
}

func (o *AnimateOptions) NavigationTimeout(seconds int) *AnimateOptions {
	o.q.Set("navigation_timeout", formatInt(seconds))
	return o
}

func (o *AnimateOptions) WaitUntil(events ...string) *AnimateOptions {
	o.q.Add("wait_until", events...)
	return o
}

func (o *AnimateOptions) WaitForSelector(selector string) *AnimateOptions {
	o.q.Set("wait_for_selector", selector)
	return o
}

func (o *AnimateOptions) Cache(cache bool) *AnimateOptions {
	o.q.Set("cache", formatBool(cache))
	return o
}

func (o *AnimateOptions) CacheTTL(seconds int) *AnimateOptions {
	o.q.Set("cache_ttl", formatInt(seconds))
	return o
}

func (o *AnimateOptions) CacheKey(key string) *AnimateOptions {
	o.q.Set("cache_key", key)
	return o
}

func (o *AnimateOptions) Async(async bool) *AnimateOptions {
	o.q.Set("async", formatBool(async))
	return o
}

func (o *AnimateOptions) WebhookURL(webhookURL string) *AnimateOptions {
	o.q.Set("webhook_url", webhookURL)
	return o
}

func (o *AnimateOptions) WebhookSign(sign bool) *AnimateOptions {
	o.q.Set("webhook_sign", formatBool(sign))
	return o
}

func (o *AnimateOptions) ResponseType(responseType string) *AnimateOptions {
	o.q.Set("response_type", responseType)
	return o
}

func (o *AnimateOptions) Store(store bool) *AnimateOptions {
	o.q.Set("store", formatBool(store))
	return o
}

func (o *AnimateOptions) StoragePath(path string) *AnimateOptions {
	o.q.Set("storage_path", path)
	return o
}

func (o *AnimateOptions) StorageBucket(bucket string) *AnimateOptions {
	o.q.Set("storage_bucket", bucket)
	return o
}

func (o *AnimateOptions) StorageClass(class string) *AnimateOptions {
	o.q.Set("storage_class", class)
	return o
}

func (o *AnimateOptions) StorageACL(acl string) *AnimateOptions {
	o.q.Set("storage_acl", acl)
	return o
}

func (o *AnimateOptions) StorageEndpoint(endpoint string) *AnimateOptions {
	o.q.Set("storage_endpoint", endpoint)
	return o
}

func (o *AnimateOptions) StorageAccessKeyID(accessKeyID string) *AnimateOptions {
	o.q.Set("storage_access_key_id", accessKeyID)
	return o
}

func (o *AnimateOptions) StorageSecretAccessKey(secretAccessKey string) *AnimateOptions {
	o.q.Set("storage_secret_access_key", secretAccessKey)
	return o
}
